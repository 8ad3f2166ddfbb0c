package models

import "time"

// Item categories a post can be filed under.
const (
	KategoriElektronik = "Elektronik"
	KategoriBuku       = "Buku"
	KategoriPakaian    = "Pakaian"
	KategoriLainnya    = "Lainnya"
)

// A post reports an item as either lost or found.
const (
	StatusHilang = "Hilang"
	StatusTemuan = "Temuan"
)

// Contact channels shown on a post's detail page.
const (
	KontakWhatsApp  = "WhatsApp"
	KontakTelegram  = "Telegram"
	KontakEmail     = "Email"
	KontakTelepon   = "Telepon"
	KontakInstagram = "Instagram"
	KontakLine      = "Line"
	KontakLainnya   = "Lainnya"
)

// FilterSemua is the catch-all value the web client sends to mean "no filter".
// It is normalized away before queries run; it is not a real category or status.
const FilterSemua = "Semua"

// Post is a single lost or found item listing.
//
// User is a denormalized snapshot of the owner captured when the post is
// created. ID, UserID, User and CreatedAt are assigned once and never change
// through updates.
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	User       User      `json:"user" gorm:"foreignKey:UserID"`
	Judul      string    `json:"judul" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Deskripsi  string    `json:"deskripsi" gorm:"type:text" validate:"required"`
	Kategori   string    `json:"kategori" gorm:"type:varchar(32)" validate:"required,oneof=Elektronik Buku Pakaian Lainnya"`
	Status     string    `json:"status" gorm:"type:varchar(16)" validate:"required,oneof=Hilang Temuan"`
	Lokasi     string    `json:"lokasi" gorm:"type:varchar(255)" validate:"required,max=255"`
	Tanggal    string    `json:"tanggal" gorm:"type:varchar(10)" validate:"required,datetime=2006-01-02"`
	TipeKontak string    `json:"tipe_kontak" gorm:"type:varchar(32)" validate:"required,oneof=WhatsApp Telegram Email Telepon Instagram Line Lainnya"`
	Kontak     string    `json:"kontak" gorm:"type:varchar(255)" validate:"required,max=255"`
	Foto       string    `json:"foto" gorm:"type:varchar(512)" validate:"omitempty,url"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostUpdate carries the mutable subset of Post fields for partial updates.
// Nil fields are left unchanged. The identifier, owner and creation timestamp
// cannot be altered through an update, so they have no counterpart here.
type PostUpdate struct {
	Judul      *string `json:"judul" validate:"omitempty,min=1,max=255"`
	Deskripsi  *string `json:"deskripsi" validate:"omitempty,min=1"`
	Kategori   *string `json:"kategori" validate:"omitempty,oneof=Elektronik Buku Pakaian Lainnya"`
	Status     *string `json:"status" validate:"omitempty,oneof=Hilang Temuan"`
	Lokasi     *string `json:"lokasi" validate:"omitempty,min=1,max=255"`
	Tanggal    *string `json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	TipeKontak *string `json:"tipe_kontak" validate:"omitempty,oneof=WhatsApp Telegram Email Telepon Instagram Line Lainnya"`
	Kontak     *string `json:"kontak" validate:"omitempty,min=1,max=255"`
	Foto       *string `json:"foto" validate:"omitempty,url"`
}

// Apply merges the supplied fields over p. Applying the same update twice
// yields the same state as applying it once.
func (u *PostUpdate) Apply(p *Post) {
	if u.Judul != nil {
		p.Judul = *u.Judul
	}
	if u.Deskripsi != nil {
		p.Deskripsi = *u.Deskripsi
	}
	if u.Kategori != nil {
		p.Kategori = *u.Kategori
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Lokasi != nil {
		p.Lokasi = *u.Lokasi
	}
	if u.Tanggal != nil {
		p.Tanggal = *u.Tanggal
	}
	if u.TipeKontak != nil {
		p.TipeKontak = *u.TipeKontak
	}
	if u.Kontak != nil {
		p.Kontak = *u.Kontak
	}
	if u.Foto != nil {
		p.Foto = *u.Foto
	}
}
