package validators

import "go.mongodb.org/mongo-driver/bson"

// ids and counts are written as int or long depending on magnitude
var integer = []string{"int", "long"}

var HotelValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "name"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},
		},
	},
}

var CounterValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "seq"},
		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},
			"seq": bson.M{
				"bsonType": integer,
				"minimum":  0,
			},
		},
	},
}
