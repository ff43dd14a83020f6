package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslateInsertError(t *testing.T) {
	duplicate := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	assert.ErrorIs(t, translateInsertError(duplicate), ErrDuplicateUser)

	plain := errors.New("connection reset")
	err := translateInsertError(plain)
	assert.NotErrorIs(t, err, ErrDuplicateUser)
	assert.ErrorIs(t, err, plain)
}
