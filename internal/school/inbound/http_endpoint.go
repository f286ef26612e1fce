package inbound

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shandysiswandi/campus/internal/pkg/jwt"
	"github.com/shandysiswandi/campus/internal/pkg/router"
	"github.com/shandysiswandi/campus/internal/pkg/uid"
	"github.com/shandysiswandi/campus/internal/school/entity"
	"github.com/shandysiswandi/campus/internal/shared/record"
)

// HTTPEndpoint exposes HTTP handlers for students, contacts and the links
// between them.
type HTTPEndpoint struct {
	uc  uc
	ids uid.RecordID
}

func stampCreate(r *router.Request) record.Audit {
	actor := jwt.ActorID(r.Context())
	return record.Audit{CreatedBy: actor, UpdatedBy: actor}
}

// StudentList returns every student.
// @Summary List students
// @Tags School
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]StudentResponse} "Students"
// @Router /api/v1/students [get]
func (h *HTTPEndpoint) StudentList(r *router.Request) (any, error) {
	students, err := h.uc.RetrieveAllStudents(r.Context())
	if err != nil {
		return nil, err
	}

	return list[StudentResponse](lo.Map(students, func(st entity.Student, _ int) StudentResponse {
		return toStudentResponse(st)
	})), nil
}

// StudentCreate enrolls a student.
// @Summary Create student
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body StudentRequest true "Student payload"
// @Success 201 {object} router.successResponse{data=StudentResponse} "Student created"
// @Failure 409 {object} router.errorResponse "Identity number already used"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/students [post]
func (h *HTTPEndpoint) StudentCreate(r *router.Request) (any, error) {
	var req StudentRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in, err := req.toEntity()
	if err != nil {
		return nil, err
	}
	in.ID = h.ids.NewID()
	in.Audit = stampCreate(r)

	student, err := h.uc.AddStudent(r.Context(), &in)
	if err != nil {
		return nil, err
	}

	return created[StudentResponse]{Data: toStudentResponse(*student), msg: "Student created"}, nil
}

// StudentDetail returns a single student.
// @Summary Get student
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID (uuid)"
// @Success 200 {object} router.successResponse{data=StudentResponse} "Student"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Router /api/v1/students/{id} [get]
func (h *HTTPEndpoint) StudentDetail(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	student, err := h.uc.RetrieveStudentByID(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toStudentResponse(*student), nil
}

// StudentUpdate replaces the editable fields of a student.
// @Summary Update student
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID (uuid)"
// @Param request body StudentRequest true "Student payload"
// @Success 200 {object} router.successResponse{data=StudentResponse} "Student updated"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/students/{id} [put]
func (h *HTTPEndpoint) StudentUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	var req StudentRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in, err := req.toEntity()
	if err != nil {
		return nil, err
	}
	in.ID = id
	in.UpdatedBy = jwt.ActorID(r.Context())

	student, err := h.uc.ModifyStudent(r.Context(), &in)
	if err != nil {
		return nil, err
	}

	return toStudentResponse(*student), nil
}

// StudentDelete removes a student together with its contact links.
// @Summary Delete student
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID (uuid)"
// @Success 200 {object} router.successResponse{data=StudentResponse} "Student deleted"
// @Failure 404 {object} router.errorResponse "Student not found"
// @Router /api/v1/students/{id} [delete]
func (h *HTTPEndpoint) StudentDelete(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	student, err := h.uc.RemoveStudentByID(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toStudentResponse(*student), nil
}

// ContactList returns every contact.
// @Summary List contacts
// @Tags School
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]ContactResponse} "Contacts"
// @Router /api/v1/contacts [get]
func (h *HTTPEndpoint) ContactList(r *router.Request) (any, error) {
	contacts, err := h.uc.RetrieveAllContacts(r.Context())
	if err != nil {
		return nil, err
	}

	return list[ContactResponse](lo.Map(contacts, func(c entity.Contact, _ int) ContactResponse {
		return toContactResponse(c)
	})), nil
}

// ContactCreate stores a contact.
// @Summary Create contact
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body ContactRequest true "Contact payload"
// @Success 201 {object} router.successResponse{data=ContactResponse} "Contact created"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/contacts [post]
func (h *HTTPEndpoint) ContactCreate(r *router.Request) (any, error) {
	var req ContactRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in := req.toEntity()
	in.ID = h.ids.NewID()
	in.Audit = stampCreate(r)

	contact, err := h.uc.AddContact(r.Context(), &in)
	if err != nil {
		return nil, err
	}

	return created[ContactResponse]{Data: toContactResponse(*contact), msg: "Contact created"}, nil
}

// @Summary Get contact
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID (uuid)"
// @Success 200 {object} router.successResponse{data=ContactResponse} "Contact"
// @Failure 404 {object} router.errorResponse "Contact not found"
// @Router /api/v1/contacts/{id} [get]
func (h *HTTPEndpoint) ContactDetail(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	contact, err := h.uc.RetrieveContactByID(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toContactResponse(*contact), nil
}

// @Summary Update contact
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID (uuid)"
// @Param request body ContactRequest true "Contact payload"
// @Success 200 {object} router.successResponse{data=ContactResponse} "Contact updated"
// @Failure 404 {object} router.errorResponse "Contact not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/contacts/{id} [put]
func (h *HTTPEndpoint) ContactUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	var req ContactRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in := req.toEntity()
	in.ID = id
	in.UpdatedBy = jwt.ActorID(r.Context())

	contact, err := h.uc.ModifyContact(r.Context(), &in)
	if err != nil {
		return nil, err
	}

	return toContactResponse(*contact), nil
}

// @Summary Delete contact
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID (uuid)"
// @Success 200 {object} router.successResponse{data=ContactResponse} "Contact deleted"
// @Failure 404 {object} router.errorResponse "Contact not found"
// @Router /api/v1/contacts/{id} [delete]
func (h *HTTPEndpoint) ContactDelete(r *router.Request) (any, error) {
	id, err := r.GetParamUUID("id")
	if err != nil {
		return nil, err
	}

	contact, err := h.uc.RemoveContactByID(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return toContactResponse(*contact), nil
}

// @Summary List student contacts
// @Tags School
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=[]StudentContactResponse} "Student contacts"
// @Router /api/v1/student-contacts [get]
func (h *HTTPEndpoint) StudentContactList(r *router.Request) (any, error) {
	links, err := h.uc.RetrieveAllStudentContacts(r.Context())
	if err != nil {
		return nil, err
	}

	return list[StudentContactResponse](lo.Map(links, func(sc entity.StudentContact, _ int) StudentContactResponse {
		return toStudentContactResponse(sc)
	})), nil
}

// StudentContactCreate links an existing student to an existing contact.
// @Summary Link contact to student
// @Tags School
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body StudentContactRequest true "Link payload"
// @Success 201 {object} router.successResponse{data=StudentContactResponse} "Student contact created"
// @Failure 409 {object} router.errorResponse "Link already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 424 {object} router.errorResponse "Student or contact does not exist"
// @Router /api/v1/student-contacts [post]
func (h *HTTPEndpoint) StudentContactCreate(r *router.Request) (any, error) {
	var req StudentContactRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in := req.toEntity()
	in.Audit = stampCreate(r)

	link, err := h.uc.AddStudentContact(r.Context(), &in)
	if err != nil {
		return nil, err
	}

	return created[StudentContactResponse]{Data: toStudentContactResponse(*link), msg: "Student contact created"}, nil
}

func linkParams(r *router.Request) (uuid.UUID, uuid.UUID, error) {
	studentID, err := r.GetParamUUID("student_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	contactID, err := r.GetParamUUID("contact_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return studentID, contactID, nil
}

// @Summary Get student contact
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student ID (uuid)"
// @Param contact_id path string true "Contact ID (uuid)"
// @Success 200 {object} router.successResponse{data=StudentContactResponse} "Student contact"
// @Failure 404 {object} router.errorResponse "Student contact not found"
// @Router /api/v1/student-contacts/{student_id}/{contact_id} [get]
func (h *HTTPEndpoint) StudentContactDetail(r *router.Request) (any, error) {
	studentID, contactID, err := linkParams(r)
	if err != nil {
		return nil, err
	}

	link, err := h.uc.RetrieveStudentContactByID(r.Context(), studentID, contactID)
	if err != nil {
		return nil, err
	}

	return toStudentContactResponse(*link), nil
}

// @Summary Unlink contact from student
// @Tags School
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student ID (uuid)"
// @Param contact_id path string true "Contact ID (uuid)"
// @Success 200 {object} router.successResponse{data=StudentContactResponse} "Student contact deleted"
// @Failure 404 {object} router.errorResponse "Student contact not found"
// @Router /api/v1/student-contacts/{student_id}/{contact_id} [delete]
func (h *HTTPEndpoint) StudentContactDelete(r *router.Request) (any, error) {
	studentID, contactID, err := linkParams(r)
	if err != nil {
		return nil, err
	}

	link, err := h.uc.RemoveStudentContactByID(r.Context(), studentID, contactID)
	if err != nil {
		return nil, err
	}

	return toStudentContactResponse(*link), nil
}
