package db_models

// Country is immutable reference data, seeded once. IDs are lowercase
// ISO 3166-1 alpha-2 codes.
type Country struct {
	ID        string `gorm:"primaryKey;size:8"`
	NameEN    string
	NameES    string
	Continent string
	Currency  string `gorm:"size:3"`
	Flag      string

	Operators []Operator `gorm:"foreignKey:CountryID"`
}
