package book

import "errors"

var ErrBookDoesNotExist = errors.New("book does not exist")
