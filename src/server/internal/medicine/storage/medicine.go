package medicinestorage

import (
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
	"github.com/medkit-app/medkit-be/src/server/internal/medicine/entity"
	"github.com/medkit-app/medkit-be/src/shared/lib/dynamo"
	"github.com/medkit-app/medkit-be/src/shared/lib/errors/mark"
)

var _ dynamo.ItemUnmarshaler = &dbMedicine{}

type dbMedicine struct {
	UserSub        string `dynamo:"user_sub,hash"`
	MedicineID     string `dynamo:"medicine_id,range"`
	Name           string `dynamo:"medicine_name"`
	Type           string `dynamo:"medicine_type"`
	Quantity       int    `dynamo:"quantity"`
	ExpirationDate string `dynamo:"expiration_date"`
}

func (d *dbMedicine) UnmarshalDynamoItem(dynamoItem map[string]*dynamodb.AttributeValue) error {
	if err := dynamolib.ValidateStringField(dynamoItem, userSubKey); err != nil {
		return mark.Wrap(err, MedicineUnmarshalMark, "Failed to validate owner field")
	}

	if err := dynamolib.ValidateStringField(dynamoItem, medicineIDKey); err != nil {
		return mark.Wrap(err, MedicineUnmarshalMark, "Failed to validate ID field")
	}

	// an identical type without the unmarshal hook, so the decode
	// below doesn't recurse back here
	type plainMedicine dbMedicine

	record := plainMedicine{}
	if err := dynamo.UnmarshalItem(dynamoItem, &record); err != nil {
		return mark.Wrap(err, MedicineUnmarshalMark, "Failed to unmarshal dynamo item")
	}

	*d = dbMedicine(record)

	return nil
}

func toDBMedicine(medicine medicineentity.Medicine) dbMedicine {
	return dbMedicine{
		UserSub:        medicine.UserSub,
		MedicineID:     medicine.MedicineID,
		Name:           medicine.Name,
		Type:           medicine.Type,
		Quantity:       medicine.Quantity,
		ExpirationDate: medicine.ExpirationDate,
	}
}

func (d dbMedicine) toEntity() medicineentity.Medicine {
	return medicineentity.Medicine{
		UserSub:        d.UserSub,
		MedicineID:     d.MedicineID,
		Name:           d.Name,
		Type:           d.Type,
		Quantity:       d.Quantity,
		ExpirationDate: d.ExpirationDate,
	}
}
