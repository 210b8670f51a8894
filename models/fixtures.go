package models

import "time"

// DemoReporter is the citizen the sample leaderboards highlight.
const DemoReporter = "Mayor Young"

const placeholderImage = "/placeholder.svg?height=300&width=400"

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleCases returns a fresh copy of the bundled sample cases.
func SampleCases() []*Case {
	return []*Case{
		{
			ID:           "M-M-23456789",
			Category:     CategoryJunkyYard,
			Latitude:     33.5186,
			Longitude:    -86.8104,
			Points:       25,
			Description:  "Abandoned property with overgrown vegetation and accumulated trash in the yard. Several broken appliances visible from the street.",
			Images:       []string{placeholderImage},
			Status:       StatusApproved,
			CreatedAt:    day("2023-11-15"),
			Area:         "Downtown",
			Organization: "Clean City Initiative",
		},
		{
			ID:           "M-M-23456790",
			Category:     CategoryAbandonedBuilding,
			Latitude:     33.5176,
			Longitude:    -86.8124,
			Points:       30,
			Description:  "Vacant building with broken windows and structural damage. Appears to be a safety hazard.",
			Images:       []string{placeholderImage},
			Status:       StatusPending,
			CreatedAt:    day("2023-11-18"),
			Area:         "Southside",
			Organization: "Urban Development",
		},
		{
			ID:           "M-M-23456791",
			Category:     CategoryIllegalDumping,
			Latitude:     33.5196,
			Longitude:    -86.8084,
			Points:       20,
			Description:  "Large pile of construction debris dumped on vacant lot. Includes broken concrete, wood, and metal scraps.",
			Images:       []string{placeholderImage},
			Status:       StatusRevision,
			CreatedAt:    day("2023-11-20"),
			Area:         "Northside",
			Organization: "Environmental Protection",
		},
		{
			ID:           "M-M-23456792",
			Category:     CategoryGraffiti,
			Latitude:     33.5166,
			Longitude:    -86.8114,
			Points:       15,
			Description:  "Extensive graffiti on public building wall. Approximately 10 feet wide and 6 feet tall.",
			Images:       []string{placeholderImage},
			Status:       StatusApproved,
			CreatedAt:    day("2023-11-22"),
			Area:         "Downtown",
			Organization: "City Beautification",
		},
		{
			ID:           "M-M-23456793",
			Category:     CategoryPothole,
			Latitude:     33.5156,
			Longitude:    -86.8134,
			Points:       10,
			Description:  "Large pothole in residential street, approximately 2 feet in diameter and 6 inches deep. Causing traffic hazard.",
			Images:       []string{placeholderImage},
			Status:       StatusApproved,
			CreatedAt:    day("2023-11-25"),
			Area:         "Eastside",
			Organization: "Road Maintenance",
		},
	}
}

const avatarPlaceholder = "/placeholder.svg?height=40&width=40"

// SampleReviewers returns the review staff roster.
func SampleReviewers() []*Reviewer {
	return []*Reviewer{
		{ID: "rev-001", Name: "Sarah Johnson", Department: "Environmental Protection", Avatar: avatarPlaceholder, Status: Online, CasesReviewed: 12},
		{ID: "rev-002", Name: "Michael Chen", Department: "Urban Development", Avatar: avatarPlaceholder, Status: Online, CasesReviewed: 8},
		{ID: "rev-003", Name: "Aisha Patel", Department: "City Beautification", Avatar: avatarPlaceholder, Status: Offline, CasesReviewed: 5},
		{ID: "rev-004", Name: "Robert Wilson", Department: "Road Maintenance", Avatar: avatarPlaceholder, Status: Online, CasesReviewed: 10},
		{ID: "rev-005", Name: "Elena Rodriguez", Department: "Clean City Initiative", Avatar: avatarPlaceholder, Status: Offline, CasesReviewed: 7},
		{ID: "rev-006", Name: "James Thompson", Department: "Environmental Protection", Avatar: avatarPlaceholder, Status: Online, CasesReviewed: 9},
		{ID: "rev-007", Name: "Olivia Washington", Department: "Urban Development", Avatar: avatarPlaceholder, Status: Offline, CasesReviewed: 6},
	}
}

// SampleStandings returns leaderboard point totals per period.
func SampleStandings() map[Period][]Standing {
	return map[Period][]Standing{
		Daily: {
			{Name: DemoReporter, Points: 125},
			{Name: "Jane Smith", Points: 110},
			{Name: "John Doe", Points: 95},
			{Name: "Alice Johnson", Points: 80},
			{Name: "Bob Williams", Points: 75},
		},
		Weekly: {
			{Name: "Jane Smith", Points: 320},
			{Name: DemoReporter, Points: 290},
			{Name: "John Doe", Points: 245},
			{Name: "Alice Johnson", Points: 210},
			{Name: "Bob Williams", Points: 185},
		},
		Monthly: {
			{Name: "John Doe", Points: 950},
			{Name: "Jane Smith", Points: 875},
			{Name: "Alice Johnson", Points: 820},
			{Name: DemoReporter, Points: 780},
			{Name: "Bob Williams", Points: 720},
		},
	}
}

func stamp(value string) time.Time {
	t, err := time.Parse("2006-01-02 03:04 PM", value)
	if err != nil {
		panic(err)
	}
	return t
}

// Departments is the fixed department list of the users directory.
var Departments = []string{
	"IT Department",
	"Environmental Protection",
	"Urban Development",
	"City Beautification",
	"Road Maintenance",
	"Clean City Initiative",
}

// SampleStaff returns the admin users directory.
func SampleStaff() []*StaffMember {
	return []*StaffMember{
		{ID: "user-001", Name: "Admin User", Email: "admin@myport901.gov", Role: "Administrator", Department: "IT Department", Status: Active, LastLogin: stamp("2023-11-28 09:15 AM"), Avatar: avatarPlaceholder},
		{ID: "user-002", Name: "Sarah Johnson", Email: "sarah.johnson@myport901.gov", Role: "Reviewer", Department: "Environmental Protection", Status: Active, LastLogin: stamp("2023-11-28 10:30 AM"), Avatar: avatarPlaceholder},
		{ID: "user-003", Name: "Michael Chen", Email: "michael.chen@myport901.gov", Role: "Reviewer", Department: "Urban Development", Status: Active, LastLogin: stamp("2023-11-27 03:45 PM"), Avatar: avatarPlaceholder},
		{ID: "user-004", Name: "Aisha Patel", Email: "aisha.patel@myport901.gov", Role: "Reviewer", Department: "City Beautification", Status: Inactive, LastLogin: stamp("2023-11-20 11:20 AM"), Avatar: avatarPlaceholder},
		{ID: "user-005", Name: "Robert Wilson", Email: "robert.wilson@myport901.gov", Role: "Viewer", Department: "Road Maintenance", Status: Active, LastLogin: stamp("2023-11-28 08:05 AM"), Avatar: avatarPlaceholder},
		{ID: "user-006", Name: "Elena Rodriguez", Email: "elena.rodriguez@myport901.gov", Role: "Viewer", Department: "Clean City Initiative", Status: Active, LastLogin: stamp("2023-11-27 01:15 PM"), Avatar: avatarPlaceholder},
	}
}

// StaffRoles returns the directory roles with their permissions.
func StaffRoles() []StaffRole {
	return []StaffRole{
		{Name: "Administrator", Permissions: []string{"View all cases", "Edit all cases", "Manage organizations", "Manage users", "View reports", "System settings"}},
		{Name: "Reviewer", Permissions: []string{"View all cases", "Edit assigned cases", "View reports"}},
		{Name: "Viewer", Permissions: []string{"View all cases", "View reports"}},
	}
}

// SampleOrganizations returns the partner organization directory.
func SampleOrganizations() []*Organization {
	return []*Organization{
		{ID: "org-001", Name: "Clean City Initiative", Type: "Government", Address: "123 Main St, Birmingham, AL 35203", Phone: "(205) 555-0123", Email: "contact@cleancity.gov", Status: Active, ContactPerson: "Sarah Johnson", Description: "Focused on cleaning up abandoned properties and junky yards across the city."},
		{ID: "org-002", Name: "Urban Development", Type: "Government", Address: "456 Park Ave, Birmingham, AL 35204", Phone: "(205) 555-0124", Email: "info@urbandevelopment.gov", Status: Active, ContactPerson: "Michael Chen", Description: "Handles abandoned buildings and urban renewal projects."},
		{ID: "org-003", Name: "Environmental Protection", Type: "Government", Address: "789 Oak St, Birmingham, AL 35205", Phone: "(205) 555-0125", Email: "contact@envprotect.gov", Status: Active, ContactPerson: "Aisha Patel", Description: "Focuses on environmental issues including illegal dumping and pollution."},
		{ID: "org-004", Name: "City Beautification", Type: "Non-profit", Address: "321 Elm St, Birmingham, AL 35206", Phone: "(205) 555-0126", Email: "hello@beautify.org", Status: Active, ContactPerson: "Robert Wilson", Description: "Volunteer organization dedicated to beautifying public spaces and removing graffiti."},
		{ID: "org-005", Name: "Road Maintenance", Type: "Government", Address: "654 Pine St, Birmingham, AL 35207", Phone: "(205) 555-0127", Email: "roads@birmingham.gov", Status: Active, ContactPerson: "Elena Rodriguez", Description: "Responsible for road repairs, pothole fixing, and street maintenance."},
		{ID: "org-006", Name: "Community Cleanup Coalition", Type: "Non-profit", Address: "987 Maple St, Birmingham, AL 35208", Phone: "(205) 555-0128", Email: "info@cleanupcoalition.org", Status: Inactive, ContactPerson: "James Thompson", Description: "Coalition of neighborhood associations focused on community-led cleanup efforts."},
	}
}

// SampleSubmissions returns the demo reporter's submission history.
func SampleSubmissions() []*Submission {
	return []*Submission{
		{CaseID: "M-M-23456789", Category: CategoryJunkyYard, Organization: "Clean City Initiative", Area: "Downtown", SubmittedAt: stamp("2023-11-15 09:23 AM"), LastUpdated: stamp("2023-11-16 02:45 PM"), Status: StatusApproved, DetailedStatus: "Case Added", Points: 25},
		{CaseID: "M-M-23456790", Category: CategoryAbandonedBuilding, Organization: "Urban Development", Area: "Southside", SubmittedAt: stamp("2023-11-18 11:05 AM"), LastUpdated: stamp("2023-11-18 11:05 AM"), Status: StatusPending, DetailedStatus: "Waiting for Review", Points: 30},
		{CaseID: "M-M-23456791", Category: CategoryIllegalDumping, Organization: "Environmental Protection", Area: "Northside", SubmittedAt: stamp("2023-11-20 03:17 PM"), LastUpdated: stamp("2023-11-22 10:30 AM"), Status: StatusRevision, DetailedStatus: "Needs Additional Information", Points: 20},
		{CaseID: "M-M-23456792", Category: CategoryGraffiti, Organization: "City Beautification", Area: "Downtown", SubmittedAt: stamp("2023-11-22 08:45 AM"), LastUpdated: stamp("2023-11-23 01:15 PM"), Status: StatusApproved, DetailedStatus: "Approved", Points: 15},
		{CaseID: "M-M-23456793", Category: CategoryPothole, Organization: "Road Maintenance", Area: "Eastside", SubmittedAt: stamp("2023-11-25 02:30 PM"), LastUpdated: stamp("2023-11-26 09:10 AM"), Status: StatusAdded, DetailedStatus: "Case Added", Points: 10},
		{CaseID: "M-M-23456794", Category: CategoryAbandonedBuilding, Organization: "Urban Development", Area: "Westside", SubmittedAt: stamp("2023-11-27 10:15 AM"), LastUpdated: stamp("2023-11-27 04:20 PM"), Status: StatusPending, DetailedStatus: "In Review", Points: 25},
		{CaseID: "M-M-23456795", Category: CategoryIllegalDumping, Organization: "Environmental Protection", Area: "Northside", SubmittedAt: stamp("2023-11-29 05:00 PM"), LastUpdated: stamp("2023-11-30 11:30 AM"), Status: StatusRevision, DetailedStatus: "Needs Additional Information", Points: 20},
		{CaseID: "M-M-23456796", Category: CategoryGraffiti, Organization: "City Beautification", Area: "Downtown", SubmittedAt: stamp("2023-12-01 09:45 AM"), LastUpdated: stamp("2023-12-02 02:15 PM"), Status: StatusAdded, DetailedStatus: "Case Added", Points: 15},
		{CaseID: "M-M-23456797", Category: CategoryPothole, Organization: "Road Maintenance", Area: "Eastside", SubmittedAt: stamp("2023-12-03 03:30 PM"), LastUpdated: stamp("2023-12-04 10:10 AM"), Status: StatusApproved, DetailedStatus: "Approved", Points: 10},
	}
}
