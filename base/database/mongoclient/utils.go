package mongoclient

import (
	"errors"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var ErrNotStruct = errors.New("mongoclient: struct or pointer to struct expected")

// MakeBsonM turns the non-zero fields of a struct into a selector or $set
// document, keyed by bson tag. Pointers are dereferenced so a pointer to a
// zero value is still written.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(patchable))
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	res := bson.M{}
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(typ.Field(i))
		if err != nil {
			return nil, err
		}

		switch {
		case tag.Skip:
		case field.Kind() == reflect.Ptr:
			if !field.IsNil() {
				res[tag.Name] = field.Elem().Interface()
			}
		case !field.IsZero():
			res[tag.Name] = field.Interface()
		}
	}
	return res, nil
}
