package model

// Column keys of the seed schema. "age" carries the numeric range check at
// the edit boundary.
const (
	KeyName       ColumnKey = "name"
	KeyEmail      ColumnKey = "email"
	KeyAge        ColumnKey = "age"
	KeyRole       ColumnKey = "role"
	KeyDepartment ColumnKey = "department"
	KeyLocation   ColumnKey = "location"
)

// SeedColumns returns the built-in column registry. Department and
// location start hidden.
func SeedColumns() []Column {
	return []Column{
		{Key: KeyName, Label: "Name", Visible: true, Sortable: true},
		{Key: KeyEmail, Label: "Email", Visible: true, Sortable: true},
		{Key: KeyAge, Label: "Age", Visible: true, Sortable: true},
		{Key: KeyRole, Label: "Role", Visible: true, Sortable: true},
		{Key: KeyDepartment, Label: "Department", Visible: false, Sortable: true},
		{Key: KeyLocation, Label: "Location", Visible: false, Sortable: true},
	}
}

// SeedRecords returns the built-in dataset used when no snapshot exists.
func SeedRecords() []Record {
	seed := []struct {
		id                                      RecordID
		name, email, role, department, location string
		age                                     float64
	}{
		{1, "Alice Johnson", "alice.j@example.com", "Developer", "Engineering", "New York", 28},
		{2, "Bob Smith", "bob.s@example.com", "Project Manager", "Management", "London", 34},
		{3, "Charlie Brown", "charlie.b@example.com", "Designer", "Creative", "Paris", 22},
		{4, "Diana Prince", "diana.p@example.com", "HR Specialist", "Human Resources", "Tokyo", 31},
		{5, "Ethan Hunt", "ethan.h@example.com", "CEO", "Executive", "New York", 45},
		{6, "Fiona Glenanne", "fiona.g@example.com", "QA Engineer", "Engineering", "Berlin", 30},
		{7, "George Costanza", "george.c@example.com", "Sales Rep", "Sales", "Chicago", 41},
		{8, "Hannah Montana", "hannah.m@example.com", "Marketing", "Marketing", "Los Angeles", 25},
		{9, "Ian Malcolm", "ian.m@example.com", "Consultant", "Strategy", "Austin", 52},
		{10, "Jane Doe", "jane.d@example.com", "Data Analyst", "Analytics", "San Francisco", 29},
		{11, "Kramer", "kramer@example.com", "Intern", "Various", "New York", 48},
		{12, "Liz Lemon", "liz.l@example.com", "Lead Writer", "Creative", "New York", 38},
	}

	records := make([]Record, 0, len(seed))
	for _, s := range seed {
		records = append(records, Record{
			ID: s.id,
			Fields: Fields{
				KeyName:       Text(s.name),
				KeyEmail:      Text(s.email),
				KeyAge:        Number(s.age),
				KeyRole:       Text(s.role),
				KeyDepartment: Text(s.department),
				KeyLocation:   Text(s.location),
			},
		})
	}

	return records
}
