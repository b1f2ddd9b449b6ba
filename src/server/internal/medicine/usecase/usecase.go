package medicineusecase

import (
	"context"

	"github.com/cockroachdb/errors/markers"
	"github.com/medkit-app/medkit-be/src/server/internal/errors/api"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/entity"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/errors"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/storage"
	"github.com/medkit-app/medkit-be/src/shared/lib/errors/mark"
)

type Usecase struct {
	db medicinestorage.DB
}

func NewUsecase(db medicinestorage.DB) Usecase {
	return Usecase{
		db: db,
	}
}

func (u Usecase) AddMedicine(ctx context.Context, input medicineentity.Input) (medicineentity.Medicine, *api.Error) {
	if err := input.Validate(); err != nil {
		return medicineentity.Medicine{}, api.CommitError(err, medicineerrors.BadMedicineDataCode, err.Error())
	}

	medicine := input.ToMedicine()
	medicine.CreateID()

	if err := u.db.CreateMedicine(ctx, medicine); err != nil {
		return medicineentity.Medicine{}, api.CommitError(err,
			api.DefaultErrorCode,
			"The medicine couldn't be saved right now")
	}

	return medicine, nil
}

func (u Usecase) GetMedicinesForOwner(ctx context.Context, userSub string) ([]medicineentity.Medicine, *api.Error) {
	medicines, err := u.db.GetMedicinesForOwner(ctx, userSub)
	if err != nil {
		return nil, api.CommitError(err,
			api.DefaultErrorCode,
			"Your medicines couldn't be retrieved right now")
	}

	return medicines, nil
}

func (u Usecase) UpdateMedicine(ctx context.Context, input medicineentity.UpdateInput) (medicineentity.Medicine, *api.Error) {
	if err := input.Validate(); err != nil {
		return medicineentity.Medicine{}, api.CommitError(err, medicineerrors.BadMedicineDataCode, err.Error())
	}

	medicine := input.ToMedicine()

	if err := u.db.UpdateMedicine(ctx, medicine); err != nil {
		switch {
		case markers.Is(err, medicinestorage.MedicineNotFoundMark):
			return medicineentity.Medicine{}, api.CommitError(err,
				medicineerrors.MedicineNotFoundCode,
				"The medicine to update couldn't be found")

		default:
			return medicineentity.Medicine{}, api.CommitError(err,
				api.DefaultErrorCode,
				"The medicine couldn't be updated right now")
		}
	}

	return medicine, nil
}

func (u Usecase) DeleteMedicine(ctx context.Context, userSub string, medicineID string) *api.Error {
	if medicineID == "" {
		err := mark.Message(medicineentity.InvalidInputMark, "No medicine was selected to delete")
		return api.CommitError(err, medicineerrors.BadMedicineDataCode, err.Error())
	}

	if err := u.db.DeleteMedicine(ctx, userSub, medicineID); err != nil {
		switch {
		case markers.Is(err, medicinestorage.MedicineNotFoundMark):
			return api.CommitError(err,
				medicineerrors.MedicineNotFoundCode,
				"The medicine to delete couldn't be found")

		default:
			return api.CommitError(err,
				api.DefaultErrorCode,
				"The medicine couldn't be deleted right now")
		}
	}

	return nil
}
