package services

import (
	"context"
	"math"
	"strings"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/repository"
)

// InterfaceStatsService defines the analytics service interface
type InterfaceStatsService interface {
	Summary(ctx context.Context) (*ResidentStats, error)
}

// Bucket is one labelled range count.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ResidentStats aggregates the resident table for the dashboard.
type ResidentStats struct {
	TotalResidents int            `json:"totalResidents"`
	Voters         int            `json:"voters"`
	Seniors        int            `json:"seniors"`
	PWD            int            `json:"pwd"`
	Gender         map[string]int `json:"gender"`
	Employment     map[string]int `json:"employment"`
	Purok          map[string]int `json:"purok"`
	AgeRanges      []Bucket       `json:"ageRanges"`
	IncomeRanges   []Bucket       `json:"incomeRanges"`
}

type bucketRange struct {
	name string
	max  float64 // inclusive
}

var ageRanges = []bucketRange{
	{"0-18", 18},
	{"19-35", 35},
	{"36-50", 50},
	{"51-65", 65},
	{"65+", math.Inf(1)},
}

var incomeRanges = []bucketRange{
	{"0-10k", 10000},
	{"10k-20k", 20000},
	{"20k-30k", 30000},
	{"30k-50k", 50000},
	{"50k+", math.Inf(1)},
}

// StatsService computes resident aggregates
type StatsService struct {
	Residents repository.InterfaceResidentRepository
}

// NewStatsService creates a new stats service
func NewStatsService(residents repository.InterfaceResidentRepository) InterfaceStatsService {
	return &StatsService{Residents: residents}
}

// Summary aggregates every resident. Unparseable ages and incomes are skipped.
func (s *StatsService) Summary(ctx context.Context) (*ResidentStats, error) {
	residents, err := s.Residents.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(residents), nil
}

// Aggregate builds the stats of residents.
func Aggregate(residents []models.Resident) *ResidentStats {
	stats := &ResidentStats{
		TotalResidents: len(residents),
		Gender:         map[string]int{},
		Employment:     map[string]int{},
		Purok:          map[string]int{},
		AgeRanges:      emptyBuckets(ageRanges),
		IncomeRanges:   emptyBuckets(incomeRanges),
	}

	for i := range residents {
		r := &residents[i]
		if r.Voter.Truthy() {
			stats.Voters++
		}
		if r.Senior.Truthy() {
			stats.Seniors++
		}
		if r.Pwd.Truthy() {
			stats.PWD++
		}

		stats.Gender[label(r.Gender)]++
		stats.Employment[label(r.EmploymentStatus)]++
		stats.Purok[label(r.Purok)]++

		if age, ok := r.Age.Float(); ok && age >= 0 {
			stats.AgeRanges[bucketIndex(ageRanges, age)].Value++
		}
		if income, ok := r.MonthlyIncome.Float(); ok && income >= 0 {
			stats.IncomeRanges[bucketIndex(incomeRanges, income)].Value++
		}
	}

	return stats
}

func emptyBuckets(ranges []bucketRange) []Bucket {
	buckets := make([]Bucket, len(ranges))
	for i, r := range ranges {
		buckets[i].Name = r.name
	}
	return buckets
}

func bucketIndex(ranges []bucketRange, v float64) int {
	for i, r := range ranges {
		if v <= r.max {
			return i
		}
	}
	return len(ranges) - 1
}

func label(v models.FlexString) string {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return "Unspecified"
	}
	return s
}
