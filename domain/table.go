package domain

import "errors"

var (
	MessageSuccessGetTables   = "tables retrieved successfully"
	MessageSuccessCreateTable = "list table created successfully"

	MessageFailedCreateTable = "failed to create list table"

	ErrInvalidTableName = errors.New("table name may only contain letters, digits and underscores")
	ErrTableExists      = errors.New("table already exists")
)

type (
	CreateTableRequest struct {
		Name string `json:"name" validate:"required,max=64"`
	}

	TablesResponse struct {
		Tables []string `json:"tables"`
	}
)
