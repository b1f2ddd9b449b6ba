package medicinestorage

import (
	"context"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/errors"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/entity"
	"github.com/medkit-app/medkit-be/src/shared/lib/dynamo"
	"github.com/medkit-app/medkit-be/src/shared/lib/errors/mark"
)

const (
	MedicinesTable = "Medicines"

	userSubKey    = "user_sub"
	medicineIDKey = "medicine_id"

	newMedicineCondition      = "attribute_not_exists(" + medicineIDKey + ")"
	existingMedicineCondition = "attribute_exists(" + medicineIDKey + ")"
)

type DB struct {
	dynamoDB dynamolib.DynamoDBWrapper
}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper) DB {
	return DB{
		dynamoDB: dynamoDB,
	}
}

func (d DB) CreateMedicine(ctx context.Context, newMedicine medicineentity.Medicine) error {
	if newMedicine.MedicineID == "" {
		err := errors.New("Medicine ID is empty")
		return mark.Wrap(err, DefaultErrorMark, "No ID provided to create medicine")
	}

	putExpr := d.dynamoDB.Table(MedicinesTable).
		Put(toDBMedicine(newMedicine)).
		If(newMedicineCondition)

	if err := putExpr.RunWithContext(ctx); err != nil {
		if conditionalCheckFailed(err) {
			return mark.Wrap(err,
				DefaultErrorMark,
				"Cannot create: a medicine of this ID already exists")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to put medicine into DB")
	}

	return nil
}

func (d DB) GetMedicinesForOwner(ctx context.Context, userSub string) ([]medicineentity.Medicine, error) {
	if userSub == "" {
		err := errors.New("User sub is empty")
		return nil, mark.Wrap(err, DefaultErrorMark, "No owner provided to fetch medicines")
	}

	values := []dbMedicine{}
	err := d.dynamoDB.Table(MedicinesTable).
		Get(userSubKey, userSub).
		AllWithContext(ctx, &values)

	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to fetch medicines for owner")
	}

	medicines := []medicineentity.Medicine{}
	for _, value := range values {
		medicines = append(medicines, value.toEntity())
	}

	return medicines, nil
}

// UpdateMedicine rewrites every mutable field of the record in place.
func (d DB) UpdateMedicine(ctx context.Context, medicine medicineentity.Medicine) error {
	if medicine.MedicineID == "" {
		err := errors.New("Medicine ID is empty")
		return mark.Wrap(err, MedicineNotFoundMark, "No ID provided to update medicine")
	}

	putExpr := d.dynamoDB.Table(MedicinesTable).
		Put(toDBMedicine(medicine)).
		If(existingMedicineCondition)

	if err := putExpr.RunWithContext(ctx); err != nil {
		if conditionalCheckFailed(err) {
			return mark.Wrap(err,
				MedicineNotFoundMark,
				"Cannot update: medicine of this ID cannot be found")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to put medicine into DB")
	}

	return nil
}

func (d DB) DeleteMedicine(ctx context.Context, userSub string, medicineID string) error {
	if medicineID == "" {
		err := errors.New("Medicine ID is empty")
		return mark.Wrap(err, MedicineNotFoundMark, "No ID provided to delete medicine")
	}

	delExpr := d.dynamoDB.Table(MedicinesTable).
		Delete(userSubKey, userSub).
		Range(medicineIDKey, medicineID).
		If(existingMedicineCondition)

	if err := delExpr.RunWithContext(ctx); err != nil {
		if conditionalCheckFailed(err) {
			return mark.Wrap(err, MedicineNotFoundMark, "Failed to find medicine to delete")
		}

		return mark.Wrap(err, DefaultErrorMark, "Failed to delete medicine")
	}

	return nil
}

func conditionalCheckFailed(err error) bool {
	_, ok := err.(*dynamodb.ConditionalCheckFailedException)
	return ok
}
