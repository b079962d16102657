package models

import "errors"

// Error sentinel untuk operasi pasien. Controller memetakan error ini ke
// HTTP status, CLI menampilkannya lalu kembali ke menu.
var (
	// ErrDischarged dikembalikan oleh setiap operasi mutasi pada pasien
	// yang sudah dipulangkan.
	ErrDischarged = errors.New("operation not allowed: patient already discharged")

	// ErrUnknownBedType dikembalikan bila prefix bed id tidak cocok dengan
	// tipe kamar manapun.
	ErrUnknownBedType = errors.New("unknown bed type")

	// ErrUnknownItem dikembalikan bila choice key tidak ada di daftar harga.
	ErrUnknownItem = errors.New("unknown price list item")

	// ErrUnknownDoctor dikembalikan bila id dokter tidak ada di roster.
	ErrUnknownDoctor = errors.New("doctor with given id not found")

	// ErrNotFound dikembalikan bila id pasien tidak ada di koleksi.
	ErrNotFound = errors.New("patient not found")
)
