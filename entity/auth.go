package entity

// Account holds the login credentials; the public profile lives in User.
type Account struct {
	BaseEntity
	UserName string `json:"userName" gorm:"unique;type:varchar(50)"`
	Password string `json:"-" gorm:"type:varchar(255)"`
	User     User   `json:"user" gorm:"foreignKey:AuthId;references:ID"`
}
