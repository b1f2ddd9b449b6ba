package medicineentity

import (
	"github.com/google/uuid"
)

// Medicine is one record in the user's medkit. UserSub partitions records
// by owner; MedicineID is unique within the partition.
type Medicine struct {
	UserSub        string `json:"user_sub"`
	MedicineID     string `json:"medicine_id"`
	Name           string `json:"medicine_name"`
	Type           string `json:"medicine_type"`
	Quantity       int    `json:"quantity"`
	ExpirationDate string `json:"expiration_date"`
}

func (m Medicine) IsNew() bool {
	return m.MedicineID == ""
}

func (m *Medicine) CreateID() {
	if !m.IsNew() {
		panic("CreateID is called without an IsNew check")
	}

	m.MedicineID = uuid.New().String()
}
