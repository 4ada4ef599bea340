package models

import "time"

// Customer is a stored customer record. Email is the natural key used to match
// incoming records; ID is assigned by the database on first insert.
type Customer struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string    `gorm:"column:first_name;not null"`
	LastName  string    `gorm:"column:last_name;not null"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex:uniq_customers_email"`
	Username  string    `gorm:"column:username;not null"`
	Gender    string    `gorm:"column:gender;not null"`
	Country   string    `gorm:"column:country;not null"`
	City      string    `gorm:"column:city;not null"`
	Phone     string    `gorm:"column:phone;not null"`
	Password  string    `gorm:"column:password;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (Customer) TableName() string {
	return "customers"
}

// FullName joins first and last name with a single space, as the API shows it.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Columns lists the columns the customers table is expected to carry.
func Columns() []string {
	return []string{
		"id", "first_name", "last_name", "email", "username", "gender",
		"country", "city", "phone", "password", "created_at", "updated_at",
	}
}

// CustomerSummary is the list view of a customer.
type CustomerSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Country  string `json:"country"`
}

// CustomerDetail is the detail view of a customer. The password hash is never exposed.
type CustomerDetail struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Gender   string `json:"gender"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// ToSummary converts the stored customer to its list view.
func (c Customer) ToSummary() CustomerSummary {
	return CustomerSummary{
		ID:       c.ID,
		FullName: c.FullName(),
		Email:    c.Email,
		Country:  c.Country,
	}
}

// ToDetail converts the stored customer to its detail view.
func (c Customer) ToDetail() CustomerDetail {
	return CustomerDetail{
		ID:       c.ID,
		FullName: c.FullName(),
		Email:    c.Email,
		Username: c.Username,
		Gender:   c.Gender,
		Country:  c.Country,
		City:     c.City,
		Phone:    c.Phone,
	}
}
