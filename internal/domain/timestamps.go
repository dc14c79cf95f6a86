package domain

import "time"

// Timestamps — общие служебные поля сущностей хранилища.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	// DeletedAt задан только у мягко удалённых записей.
	DeletedAt *time.Time
}

// Deleted сообщает, помечена ли запись удалённой.
func (t Timestamps) Deleted() bool {
	return t.DeletedAt != nil
}
