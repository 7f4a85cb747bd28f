package repository

import "errors"

// ErrDepartmentNotFound indicates a reading referenced a missing department.
var ErrDepartmentNotFound = errors.New("department not found")

// ErrDataAlreadyExists indicates seed data is present and initialize was refused.
var ErrDataAlreadyExists = errors.New("seed data already exists")
