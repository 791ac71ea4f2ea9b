package validators

import (
	"hotelbooking/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"hotel_id",
			"room_number",
			"room_type",
			"capacity",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"hotel_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"room_number": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"room_type": bson.M{
				"bsonType": "string",
				"enum":     roomTypes(),
			},

			"capacity": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},
		},
	},
}

func roomTypes() []string {
	types := make([]string, 0, len(model.RoomTypes))
	for _, t := range model.RoomTypes {
		types = append(types, string(t))
	}
	return types
}
