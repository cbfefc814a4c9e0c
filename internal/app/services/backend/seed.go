package backend

import (
	"time"
	"transactions-client/internal/app/models"

	"github.com/google/uuid"
)

var seedMerchants = []string{
	"Social Media Ads Inc",
	"Cloud Hosting Co",
	"Office Supplies Ltd",
	"Airline Travel",
	"Coffee Roasters",
	"Software Licenses",
}

// SeedEmployees returns the fixture employees served by the in-memory backend.
func SeedEmployees() []models.Employee {
	return []models.Employee{
		{ID: uuid.NewString(), FirstName: "James", LastName: "Smith"},
		{ID: uuid.NewString(), FirstName: "Mary", LastName: "Johnson"},
		{ID: uuid.NewString(), FirstName: "Robert", LastName: "Williams"},
		{ID: uuid.NewString(), FirstName: "Patricia", LastName: "Brown"},
	}
}

// SeedTransactions spreads count transactions over employees in round-robin
// order, one day apart. The order is stable for a given input.
func SeedTransactions(employees []models.Employee, count int) []models.Transaction {
	if len(employees) == 0 {
		return []models.Transaction{}
	}

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, models.Transaction{
			ID:           uuid.NewString(),
			Amount:       float64((i*7919)%100000) / 100,
			Employee:     employees[i%len(employees)],
			MerchantName: seedMerchants[i%len(seedMerchants)],
			Date:         start.AddDate(0, 0, i).Format(time.DateOnly),
			Approved:     i%3 != 0,
		})
	}
	return transactions
}
