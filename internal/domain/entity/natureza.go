package entity

import "time"

// Natureza é a classificação/categoria atribuível a Produtos. Nome é único.
type Natureza struct {
	ID        int64
	Nome      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
