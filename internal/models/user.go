package models

// User represents a registered member of the lost and found board.
type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	NamaLengkap string `json:"nama_lengkap" gorm:"type:varchar(255)" validate:"required,max=255"`
	Email       string `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	NoTelepon   string `json:"no_telepon,omitempty" gorm:"type:varchar(32)" validate:"omitempty,max=32"`
	Password    string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
}
