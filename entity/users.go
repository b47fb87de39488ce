package entity

// User is the public profile behind the user directory. Name is what message views show as
// the sender's display name.
type User struct {
	BaseEntity
	Name        string `json:"name" gorm:"type:varchar(255)"`
	Email       string `json:"email" gorm:"unique;type:varchar(100)"`
	Avatar      string `json:"avatar,omitempty" gorm:"text"`
	PhoneNumber string `json:"phoneNumber" gorm:"unique;type:varchar(20)"`
	AuthId      string `json:"authId" gorm:"type:varchar(255);unique"`
}
