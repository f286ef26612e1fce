package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shandysiswandi/campus/internal/pkg/goerror"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

func (s *Usecase) AddContact(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	ctx, span := s.startSpan(ctx, "AddContact")
	defer span.End()

	if contact == nil {
		return nil, s.reject(ctx, entity.KindContact, &goerror.NullEntityError{Entity: entity.KindContact})
	}

	if cause := record.CheckAdd(s.validator, entity.KindContact, contact, contact.Audit); cause != nil {
		return nil, s.reject(ctx, entity.KindContact, cause)
	}

	in := *contact
	in.Created(s.clock.Now())

	return s.repoDB.InsertContact(ctx, in)
}

func (s *Usecase) ModifyContact(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	ctx, span := s.startSpan(ctx, "ModifyContact")
	defer span.End()

	if contact == nil {
		return nil, s.reject(ctx, entity.KindContact, &goerror.NullEntityError{Entity: entity.KindContact})
	}

	if cause := record.CheckModify(s.validator, entity.KindContact, contact, contact.Audit); cause != nil {
		return nil, s.reject(ctx, entity.KindContact, cause)
	}

	stored, err := s.repoDB.SelectContactByID(ctx, contact.ID)
	if missing(stored, err) {
		return nil, s.reject(ctx, entity.KindContact, &goerror.NotFoundError{Entity: entity.KindContact, ID: contact.ID})
	}
	if err != nil {
		return nil, err
	}

	in := *contact
	in.Updated(s.clock.Now(), stored.Audit)

	return s.repoDB.UpdateContact(ctx, in)
}

func (s *Usecase) RemoveContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	ctx, span := s.startSpan(ctx, "RemoveContactByID")
	defer span.End()

	if _, err := s.retrieveContact(ctx, id); err != nil {
		return nil, err
	}

	return s.repoDB.DeleteContact(ctx, id)
}

func (s *Usecase) RetrieveContactByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	ctx, span := s.startSpan(ctx, "RetrieveContactByID")
	defer span.End()

	return s.retrieveContact(ctx, id)
}

func (s *Usecase) RetrieveAllContacts(ctx context.Context) ([]entity.Contact, error) {
	ctx, span := s.startSpan(ctx, "RetrieveAllContacts")
	defer span.End()

	return s.repoDB.SelectAllContacts(ctx)
}

func (s *Usecase) retrieveContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	if cause := record.CheckID(entity.KindContact, "ID", id); cause != nil {
		return nil, s.reject(ctx, entity.KindContact, cause)
	}

	contact, err := s.repoDB.SelectContactByID(ctx, id)
	if missing(contact, err) {
		return nil, s.reject(ctx, entity.KindContact, &goerror.NotFoundError{Entity: entity.KindContact, ID: id})
	}
	if err != nil {
		return nil, err
	}

	return contact, nil
}
