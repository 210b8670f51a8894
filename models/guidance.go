package models

// SafetyTips returns the cleanup advice shown on a case's detail view.
func (c CaseCategory) SafetyTips() []string {
	switch c {
	case CategoryJunkyYard:
		return []string{
			"Wear gloves and protective clothing when handling debris",
			"Separate recyclables from general waste",
			"Be cautious of sharp objects like broken glass or metal",
			"Consider renting a dumpster for large cleanups",
			"Check local regulations for proper disposal of appliances",
		}
	case CategoryAbandonedBuilding:
		return []string{
			"Never enter an unstable structure",
			"Report structural hazards to local authorities",
			"Secure the perimeter to prevent unauthorized access",
			"Remove overgrown vegetation around the building",
			"Contact a professional for asbestos or lead paint concerns",
		}
	case CategoryIllegalDumping:
		return []string{
			"Don't handle hazardous materials (chemicals, batteries, etc.)",
			"Document the site before cleanup for reporting purposes",
			"Use heavy-duty trash bags for collection",
			"Organize a community cleanup event for larger areas",
			"Report to environmental authorities if hazardous waste is present",
		}
	case CategoryGraffiti:
		return []string{
			"Test cleaning solutions on a small area first",
			"Use appropriate solvents based on the surface material",
			"Wear respiratory protection when using chemical removers",
			"Pressure washing works well for most surfaces",
			"Consider applying anti-graffiti coating after cleanup",
		}
	default:
		return []string{
			"Always wear appropriate protective equipment",
			"Work with neighbors to share cleanup responsibilities",
			"Contact local authorities for guidance on proper disposal",
			"Take before and after photos to document improvement",
			"Consider organizing a community cleanup day",
		}
	}
}

// RevisionInstructions lists what a reporter must fix when a case is sent
// back for revision.
func (c CaseCategory) RevisionInstructions() []string {
	switch c {
	case CategoryJunkyYard:
		return []string{
			"Take clearer photos showing the full extent of the yard",
			"Provide specific details about any hazardous materials present",
			"Include information about property ownership if available",
			"Estimate the approximate size of the affected area",
			"Note any immediate safety concerns for neighbors",
		}
	case CategoryAbandonedBuilding:
		return []string{
			"Take photos of all sides of the building",
			"Document any visible structural damage",
			"Note if there are signs of recent activity or trespassing",
			"Check if doors and windows are properly secured",
			"Provide information about nearby occupied buildings",
		}
	case CategoryIllegalDumping:
		return []string{
			"Take photos that show the scale of the dumping",
			"Document any identifying information found in the waste",
			"Note if this is a recurring issue at this location",
			"Estimate the volume of waste (truck loads, cubic yards, etc.)",
			"Identify any hazardous materials visible in the dump",
		}
	case CategoryGraffiti:
		return []string{
			"Take close-up photos of the graffiti content",
			"Document the full area affected",
			"Note the type of surface that has been vandalized",
			"Check if the graffiti contains offensive content or gang symbols",
			"Estimate how long the graffiti has been present",
		}
	default:
		return []string{
			"Provide clearer photos of the issue",
			"Add more specific details about the location",
			"Include information about how long the issue has existed",
			"Document any attempts to address the issue previously",
			"Note any immediate safety concerns",
		}
	}
}
