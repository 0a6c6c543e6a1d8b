package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/usecase"
)

func publishedListing() *entity.Listing {
	l := entity.NewListing("user-1", "Profitable SaaS", entity.CategorySaaS)
	l.Status = entity.StatusPublished
	l.ContactEmail = "seller@example.com"
	return l
}

func validInterestInput() usecase.SubmitInterestInput {
	return usecase.SubmitInterestInput{
		Name:    "Jordan Buyer",
		Email:   "Jordan.Buyer@Example.COM",
		Message: "I would love to learn more about this business.",
	}
}

func TestSubmitInterestCreatesLead(t *testing.T) {
	l := publishedListing()
	listings := new(MockListingRepository)
	interests := new(MockInterestRepository)
	listings.On("FindByID", mock.Anything, l.ID).Return(l, nil)
	interests.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewSubmitInterestUseCase(interests, listings, nil)
	input := validInterestInput()
	input.Name = "  Jordan Buyer  "
	input.BuyerType = "investor"
	interest, err := uc.Execute(context.Background(), l.ID, input)

	assert.NoError(t, err)
	assert.Equal(t, entity.InterestNew, interest.Status)
	assert.Equal(t, "Jordan Buyer", interest.Name)
	assert.Equal(t, "jordan.buyer@example.com", interest.Email)
	assert.Equal(t, entity.BuyerInvestor, interest.BuyerType)
	interests.AssertExpectations(t)
}

func TestSubmitInterestShortMessageRejected(t *testing.T) {
	uc := usecase.NewSubmitInterestUseCase(new(MockInterestRepository), new(MockListingRepository), nil)

	input := validInterestInput()
	input.Message = "Too short" // 9 characters

	_, err := uc.Execute(context.Background(), "any", input)

	assert.True(t, usecase.IsValidation(err))
}

func TestSubmitInterestMessageLengthCountsCharacters(t *testing.T) {
	// "Привет" is 12 bytes but only 6 characters; byte length must not
	// let it through the 10-character minimum.
	uc := usecase.NewSubmitInterestUseCase(new(MockInterestRepository), new(MockListingRepository), nil)

	input := validInterestInput()
	input.Message = "Привет"

	_, err := uc.Execute(context.Background(), "any", input)

	assert.True(t, usecase.IsValidation(err))
}

func TestSubmitInterestAgainstNonPublishedListingIsNotFound(t *testing.T) {
	l := publishedListing()
	l.Status = entity.StatusDraft

	listings := new(MockListingRepository)
	interests := new(MockInterestRepository)
	listings.On("FindByID", mock.Anything, l.ID).Return(l, nil)

	uc := usecase.NewSubmitInterestUseCase(interests, listings, nil)
	_, err := uc.Execute(context.Background(), l.ID, validInterestInput())

	assert.True(t, usecase.IsNotFound(err))
	interests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitInterestDuplicatesAccepted(t *testing.T) {
	// No dedupe: the same buyer asking twice is two records.
	l := publishedListing()
	listings := new(MockListingRepository)
	interests := new(MockInterestRepository)
	listings.On("FindByID", mock.Anything, l.ID).Return(l, nil)
	interests.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewSubmitInterestUseCase(interests, listings, nil)
	first, err1 := uc.Execute(context.Background(), l.ID, validInterestInput())
	second, err2 := uc.Execute(context.Background(), l.ID, validInterestInput())

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEqual(t, first.ID, second.ID)
	interests.AssertNumberOfCalls(t, "Create", 2)
}

func TestAdvanceInterestDirectToWon(t *testing.T) {
	l := publishedListing()
	i := entity.NewInterest(l.ID, "Jordan", "jordan@example.com", entity.BuyerIndividual, "interested in buying")

	listings := new(MockListingRepository)
	interests := new(MockInterestRepository)
	interests.On("FindByID", mock.Anything, i.ID).Return(i, nil)
	listings.On("FindByID", mock.Anything, l.ID).Return(l, nil)

	var stored time.Time
	interests.On("UpdateStatus", mock.Anything, i.ID, entity.InterestWon, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(3).(time.Time) }).
		Return(nil)

	uc := usecase.NewAdvanceInterestUseCase(interests, listings)
	updated, err := uc.Execute(context.Background(), i.ID, entity.InterestWon, owner)

	assert.NoError(t, err)
	assert.Equal(t, entity.InterestWon, updated.Status)
	assert.Equal(t, stored, updated.UpdatedAt)
}

func TestAdvanceInterestBackward(t *testing.T) {
	l := publishedListing()
	i := entity.NewInterest(l.ID, "Jordan", "jordan@example.com", entity.BuyerIndividual, "interested in buying")
	i.Status = entity.InterestProposalSent

	listings := new(MockListingRepository)
	interests := new(MockInterestRepository)
	interests.On("FindByID", mock.Anything, i.ID).Return(i, nil)
	listings.On("FindByID", mock.Anything, l.ID).Return(l, nil)
	interests.On("UpdateStatus", mock.Anything, i.ID, entity.InterestInContact, mock.Anything).Return(nil)

	uc := usecase.NewAdvanceInterestUseCase(interests, listings)
	updated, err := uc.Execute(context.Background(), i.ID, entity.InterestInContact, admin)

	assert.NoError(t, err)
	assert.Equal(t, entity.InterestInContact, updated.Status)
}

func TestAdvanceInterestForbiddenForStranger(t *testing.T) {
	l := publishedListing()
	i := entity.NewInterest(l.ID, "Jordan", "jordan@example.com", entity.BuyerIndividual, "interested in buying")

	listings := new(MockListingRepository)
	interests := new(MockInterestRepository)
	interests.On("FindByID", mock.Anything, i.ID).Return(i, nil)
	listings.On("FindByID", mock.Anything, l.ID).Return(l, nil)

	uc := usecase.NewAdvanceInterestUseCase(interests, listings)
	_, err := uc.Execute(context.Background(), i.ID, entity.InterestWon, stranger)

	assert.True(t, usecase.IsForbidden(err))
	interests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceOrphanedInterestAdminOnly(t *testing.T) {
	i := entity.NewInterest("gone-listing", "Jordan", "jordan@example.com", entity.BuyerIndividual, "interested in buying")

	listings := new(MockListingRepository)
	interests := new(MockInterestRepository)
	interests.On("FindByID", mock.Anything, i.ID).Return(i, nil)
	listings.On("FindByID", mock.Anything, "gone-listing").
		Return(nil, &usecase.NotFoundError{Resource: "listing", ID: "gone-listing"})
	interests.On("UpdateStatus", mock.Anything, i.ID, entity.InterestLost, mock.Anything).Return(nil)

	uc := usecase.NewAdvanceInterestUseCase(interests, listings)

	_, err := uc.Execute(context.Background(), i.ID, entity.InterestLost, owner)
	assert.True(t, usecase.IsForbidden(err))

	updated, err := uc.Execute(context.Background(), i.ID, entity.InterestLost, admin)
	assert.NoError(t, err)
	assert.Equal(t, entity.InterestLost, updated.Status)
}

func TestListInterestsRequiresAuthentication(t *testing.T) {
	uc := usecase.NewListInterestsUseCase(new(MockInterestRepository), new(MockListingRepository))

	_, err := uc.Execute(context.Background(), usecase.InterestFilter{}, usecase.Anonymous)

	assert.True(t, usecase.IsForbidden(err))
}

func TestListInterestsScopedToOwner(t *testing.T) {
	interests := new(MockInterestRepository)
	interests.On("List", mock.Anything, mock.MatchedBy(func(f usecase.InterestFilter) bool {
		return f.OwnerScopeID == "user-1"
	})).Return([]*entity.Interest{}, 0, nil)

	uc := usecase.NewListInterestsUseCase(interests, new(MockListingRepository))
	_, err := uc.Execute(context.Background(), usecase.InterestFilter{}, owner)

	assert.NoError(t, err)
	interests.AssertExpectations(t)
}

func TestListInterestsAdminUnscoped(t *testing.T) {
	interests := new(MockInterestRepository)
	interests.On("List", mock.Anything, mock.MatchedBy(func(f usecase.InterestFilter) bool {
		return f.OwnerScopeID == ""
	})).Return([]*entity.Interest{}, 0, nil)

	uc := usecase.NewListInterestsUseCase(interests, new(MockListingRepository))
	_, err := uc.Execute(context.Background(), usecase.InterestFilter{}, admin)

	assert.NoError(t, err)
	interests.AssertExpectations(t)
}

func TestListInterestsByListingChecksOwnership(t *testing.T) {
	l := publishedListing()
	listings := new(MockListingRepository)
	listings.On("FindByID", mock.Anything, l.ID).Return(l, nil)

	uc := usecase.NewListInterestsUseCase(new(MockInterestRepository), listings)
	_, err := uc.Execute(context.Background(), usecase.InterestFilter{ListingID: l.ID}, stranger)

	assert.True(t, usecase.IsForbidden(err))
}
