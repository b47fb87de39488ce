package entity

import "gorm.io/gorm/schema"

// NamingStrategy maps Message to t_message, User to t_user and so on.
var NamingStrategy = schema.NamingStrategy{
	TablePrefix:   "t_",
	SingularTable: true,
}

// Models lists every table the service migrates, in dependency order.
func Models() []any {
	return []any{&Account{}, &User{}, &Message{}}
}
