package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"room_id",
			"arrival_date",
			"departure_date",
			"guests",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"room_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"arrival_date": bson.M{
				"bsonType": "date",
			},

			"departure_date": bson.M{
				"bsonType": "date",
			},

			"guests": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
