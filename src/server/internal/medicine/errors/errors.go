package medicineerrors

import (
	"github.com/medkit-app/medkit-be/src/server/internal/errors/api"
)

const (
	MedicineNotFoundCode = api.ErrorCode("medicine_not_found")
	BadMedicineDataCode  = api.ErrorCode("bad_medicine_data")
)
