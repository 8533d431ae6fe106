// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryNames lists the categories created for every new user.
var DefaultCategoryNames = []string{
	"Aluguel", "Condomínio", "Água", "Luz", "Plano celular", "Internet",
	"Supermercado", "Restaurante", "Delivery / iFood", "Refeição trabalho",
	"TV / Streaming", "Transporte", "Cartão de crédito", "Contas fixas", "Lazer",
	"Saúde", "Educação", "Poupança", "Roupas", "Calçados", "Cosméticos",
	"Farmácia", "Academia", "Barbeiro / Salão", "Cinema", "Viagem", "Passeios",
	"Jogos", "Bares / festas", "Faculdade", "Móveis", "Outros", "Imprevistos",
}

// Category represents a payment category owned by a single user.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
