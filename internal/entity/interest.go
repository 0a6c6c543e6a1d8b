package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InterestStatus is the position of a lead in the sales funnel:
// NEW -> IN_CONTACT -> PROPOSAL_SENT -> WON | LOST. The order is UX
// guidance only; staff may move a lead in any direction.
type InterestStatus string

const (
	InterestNew          InterestStatus = "NEW"
	InterestInContact    InterestStatus = "IN_CONTACT"
	InterestProposalSent InterestStatus = "PROPOSAL_SENT"
	InterestWon          InterestStatus = "WON"
	InterestLost         InterestStatus = "LOST"
)

var allInterestStatuses = []InterestStatus{
	InterestNew, InterestInContact, InterestProposalSent, InterestWon, InterestLost,
}

func ParseInterestStatus(s string) (InterestStatus, error) {
	st := InterestStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range allInterestStatuses {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown interest status %q", s)
}

// BuyerType classifies who is asking.
type BuyerType string

const (
	BuyerIndividual BuyerType = "INDIVIDUAL"
	BuyerCompany    BuyerType = "COMPANY"
	BuyerInvestor   BuyerType = "INVESTOR"
	BuyerBroker     BuyerType = "BROKER"
	BuyerOther      BuyerType = "OTHER"
)

func ParseBuyerType(s string) (BuyerType, error) {
	b := BuyerType(strings.ToUpper(strings.TrimSpace(s)))
	switch b {
	case BuyerIndividual, BuyerCompany, BuyerInvestor, BuyerBroker, BuyerOther:
		return b, nil
	}
	return "", fmt.Errorf("unknown buyer type %q", s)
}

// Interest is a buyer inquiry against one listing. It outlives the
// listing's status changes, and deleting the listing leaves it behind
// as a historical record.
type Interest struct {
	ID          string         `json:"id"`
	ListingID   string         `json:"listing_id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	BuyerType   BuyerType      `json:"buyer_type"`
	BudgetRange string         `json:"budget_range,omitempty"`
	Message     string         `json:"message"`
	Source      string         `json:"source,omitempty"`
	Status      InterestStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewInterest(listingID, name, email string, buyerType BuyerType, message string) *Interest {
	now := time.Now()
	return &Interest{
		ID:        uuid.New().String(),
		ListingID: listingID,
		Name:      name,
		Email:     email,
		BuyerType: buyerType,
		Message:   message,
		Status:    InterestNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
