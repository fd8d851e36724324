package models

import (
	"time"
)

// Resident is one tracked individual. ID is supplied by the caller and unique.
type Resident struct {
	ID               FlexString `gorm:"primaryKey;type:varchar(64)" json:"id" bson:"id"`
	Firstname        FlexString `gorm:"type:varchar(100);not null" json:"firstname" bson:"firstname"`
	Lastname         FlexString `gorm:"type:varchar(100);not null" json:"lastname" bson:"lastname"`
	Birthday         FlexString `gorm:"type:varchar(32);not null" json:"birthday" bson:"birthday"`
	Gender           FlexString `gorm:"type:varchar(32);not null" json:"gender" bson:"gender"`
	Age              FlexString `gorm:"type:varchar(8);not null" json:"age" bson:"age"`
	Address          FlexString `gorm:"type:varchar(255);not null" json:"address" bson:"address"`
	Email            FlexString `gorm:"type:varchar(100);not null" json:"email" bson:"email"`
	Pnumber          FlexString `gorm:"type:varchar(32);not null" json:"pnumber" bson:"pnumber"`
	CivilStatus      FlexString `gorm:"type:varchar(32);not null" json:"civilStatus" bson:"civilStatus"`
	Nationality      FlexString `gorm:"type:varchar(64);not null" json:"nationality" bson:"nationality"`
	Religion         FlexString `gorm:"type:varchar(64);not null" json:"religion" bson:"religion"`
	HouseNumber      FlexString `gorm:"type:varchar(32);not null" json:"houseNumber" bson:"houseNumber"`
	Purok            FlexString `gorm:"type:varchar(64);not null;index" json:"purok" bson:"purok"`
	YearsOfResidency FlexString `gorm:"type:varchar(8);not null" json:"yearsOfResidency" bson:"yearsOfResidency"`
	Voter            FlexString `gorm:"type:varchar(16);not null" json:"voter" bson:"voter"`
	EmploymentStatus FlexString `gorm:"type:varchar(32);not null" json:"employmentStatus" bson:"employmentStatus"`
	Occupation       FlexString `gorm:"type:varchar(100);not null" json:"occupation" bson:"occupation"`
	MonthlyIncome    FlexString `gorm:"type:varchar(32);not null" json:"monthlyIncome" bson:"monthlyIncome"`
	EducationLevel   FlexString `gorm:"type:varchar(64);not null" json:"educationLevel" bson:"educationLevel"`
	Senior           FlexString `gorm:"type:varchar(16);not null" json:"senior" bson:"senior"`
	Pwd              FlexString `gorm:"type:varchar(16);not null" json:"pwd" bson:"pwd"`
	CreatedAt        time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// TableName pins the table name for gorm.
func (Resident) TableName() string {
	return "residents"
}

// ResidentField describes one caller supplied attribute. Name is the JSON and
// document key, Column the relational column.
type ResidentField struct {
	Name   string
	Column string
	ref    func(*Resident) *FlexString
}

// Value returns the field's value on r.
func (f ResidentField) Value(r *Resident) FlexString {
	return *f.ref(r)
}

// Set stores v on r.
func (f ResidentField) Set(r *Resident, v FlexString) {
	*f.ref(r) = v
}

// ResidentFields lists every required attribute in form order, id first.
var ResidentFields = []ResidentField{
	{"id", "id", func(r *Resident) *FlexString { return &r.ID }},
	{"firstname", "firstname", func(r *Resident) *FlexString { return &r.Firstname }},
	{"lastname", "lastname", func(r *Resident) *FlexString { return &r.Lastname }},
	{"birthday", "birthday", func(r *Resident) *FlexString { return &r.Birthday }},
	{"gender", "gender", func(r *Resident) *FlexString { return &r.Gender }},
	{"age", "age", func(r *Resident) *FlexString { return &r.Age }},
	{"address", "address", func(r *Resident) *FlexString { return &r.Address }},
	{"email", "email", func(r *Resident) *FlexString { return &r.Email }},
	{"pnumber", "pnumber", func(r *Resident) *FlexString { return &r.Pnumber }},
	{"civilStatus", "civil_status", func(r *Resident) *FlexString { return &r.CivilStatus }},
	{"nationality", "nationality", func(r *Resident) *FlexString { return &r.Nationality }},
	{"religion", "religion", func(r *Resident) *FlexString { return &r.Religion }},
	{"houseNumber", "house_number", func(r *Resident) *FlexString { return &r.HouseNumber }},
	{"purok", "purok", func(r *Resident) *FlexString { return &r.Purok }},
	{"yearsOfResidency", "years_of_residency", func(r *Resident) *FlexString { return &r.YearsOfResidency }},
	{"voter", "voter", func(r *Resident) *FlexString { return &r.Voter }},
	{"employmentStatus", "employment_status", func(r *Resident) *FlexString { return &r.EmploymentStatus }},
	{"occupation", "occupation", func(r *Resident) *FlexString { return &r.Occupation }},
	{"monthlyIncome", "monthly_income", func(r *Resident) *FlexString { return &r.MonthlyIncome }},
	{"educationLevel", "education_level", func(r *Resident) *FlexString { return &r.EducationLevel }},
	{"senior", "senior", func(r *Resident) *FlexString { return &r.Senior }},
	{"pwd", "pwd", func(r *Resident) *FlexString { return &r.Pwd }},
}

// ResidentColumn maps a JSON field name to its column, ok=false if unknown.
func ResidentColumn(name string) (string, bool) {
	for _, f := range ResidentFields {
		if f.Name == name {
			return f.Column, true
		}
	}
	return "", false
}

// MissingFields returns the names of required fields that are blank.
func (r *Resident) MissingFields() []string {
	var missing []string
	for _, f := range ResidentFields {
		if f.Value(r).IsEmpty() {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// ProvidedUpdates returns the non-empty fields of r keyed by JSON name,
// skipping id. Blank values never clear a stored field.
func (r *Resident) ProvidedUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	for _, f := range ResidentFields[1:] {
		if v := f.Value(r); !v.IsEmpty() {
			updates[f.Name] = v.String()
		}
	}
	return updates
}

// ResidentSummary is the reduced projection shown to QR scanners. It carries no
// contact or financial fields.
type ResidentSummary struct {
	ID        FlexString `json:"id"`
	Firstname FlexString `json:"firstname"`
	Lastname  FlexString `json:"lastname"`
	Gender    FlexString `json:"gender"`
	Age       FlexString `json:"age"`
	Address   FlexString `json:"address"`
	Purok     FlexString `json:"purok"`
}

// Summary builds the reduced projection of r.
func (r *Resident) Summary() ResidentSummary {
	return ResidentSummary{
		ID:        r.ID,
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Gender:    r.Gender,
		Age:       r.Age,
		Address:   r.Address,
		Purok:     r.Purok,
	}
}
