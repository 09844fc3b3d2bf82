package services

import (
	"fmt"

	"github.com/google/uuid"

	"niknaks/internal/domain"
	"niknaks/internal/repos"
	"niknaks/internal/validate"
)

// IntakeService accepts visitor submissions: custom-order requests and
// mailing-list signups.
type IntakeService struct {
	Intake *repos.IntakeRepo
}

func NewIntakeService(intake *repos.IntakeRepo) *IntakeService {
	return &IntakeService{Intake: intake}
}

type CustomRequestInput struct {
	FullName    string
	Email       string
	PieceType   string
	Description string
	Budget      string
}

// SubmitCustomRequest validates and stores an intake form submission,
// returning the new request id.
func (s *IntakeService) SubmitCustomRequest(in CustomRequestInput) (string, error) {
	name, ok := validate.Name(in.FullName)
	if !ok {
		return "", fmt.Errorf("intake: invalid name")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return "", fmt.Errorf("intake: invalid email")
	}
	desc, ok := validate.Message(in.Description)
	if !ok {
		return "", fmt.Errorf("intake: description must be 10-5000 characters")
	}

	req := domain.CustomRequest{
		ID:          uuid.NewString(),
		FullName:    name,
		Email:       email,
		PieceType:   in.PieceType,
		Description: desc,
		Budget:      in.Budget,
	}
	if err := s.Intake.InsertCustomRequest(req); err != nil {
		return "", err
	}
	return req.ID, nil
}

// Subscribe adds an email to the mailing list; zip is optional and marks the
// local-drops list.
func (s *IntakeService) Subscribe(email, zip string) error {
	addr, ok := validate.Email(email)
	if !ok {
		return fmt.Errorf("intake: invalid email")
	}
	if zip != "" {
		z, ok := validate.Zip(zip)
		if !ok {
			return fmt.Errorf("intake: invalid zip")
		}
		zip = z
	}
	return s.Intake.UpsertSubscriber(addr, zip)
}
