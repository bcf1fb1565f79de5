package user

import (
	"context"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/samber/lo"

	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/resolve"
)

// Field names a user attribute that Update can change.
type Field string

const (
	// FieldFirstName is the given name.
	FieldFirstName Field = KeyFirstName
	// FieldLastName is the family name.
	FieldLastName Field = KeyLastName
	// FieldDisplayName is the name shown in conversations.
	FieldDisplayName Field = KeyDisplayName
	// FieldTitle is the job title.
	FieldTitle Field = KeyTitle
	// FieldEmailAddress is the primary email address.
	FieldEmailAddress Field = KeyEmailAddress
	// FieldLocation is the office location.
	FieldLocation Field = KeyLocation
	// FieldDepartment is the department.
	FieldDepartment Field = KeyDepartment
	// FieldUsername is the pod-local username. The platform may treat it as
	// create-only, so it is not in DefaultMutableFields.
	FieldUsername Field = KeyUsername
	// FieldCompany is the company name. The platform may treat it as read-only,
	// so it is not in DefaultMutableFields.
	FieldCompany Field = KeyCompany
)

// DefaultMutableFields is the capability list Update uses when
// UpdateInput.Mutable is empty.
var DefaultMutableFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldDisplayName,
	FieldTitle,
	FieldEmailAddress,
	FieldLocation,
	FieldDepartment,
}

var allFields = append(slices.Clone(DefaultMutableFields), FieldUsername, FieldCompany)

// ParseFields converts field names, such as pod.Config.MutableUserFields, into
// a capability list.
func ParseFields(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		f := Field(strings.ToLower(strings.TrimSpace(name)))
		if f == "" {
			continue
		}
		if !slices.Contains(allFields, f) {
			return nil, pod.InvalidArgument("user: unknown field %q", name)
		}
		fields = append(fields, f)
	}
	return lo.Uniq(fields), nil
}

// Changes is a partial user update. Nil fields are left unchanged.
type Changes struct {
	FirstName    *string `validate:"omitnil,notblank,max=255"`
	LastName     *string `validate:"omitnil,notblank,max=255"`
	DisplayName  *string `validate:"omitnil,notblank,max=255"`
	Title        *string `validate:"omitnil,max=255"`
	EmailAddress *string `validate:"omitnil,email"`
	Username     *string `validate:"omitnil,notblank,max=255"`
	Company      *string `validate:"omitnil,max=255"`
	Location     *string `validate:"omitnil,max=255"`
	Department   *string `validate:"omitnil,max=255"`
}

// Fields returns the fields c changes, in declaration order.
func (c Changes) Fields() []Field {
	set := []struct {
		field Field
		value *string
	}{
		{FieldFirstName, c.FirstName},
		{FieldLastName, c.LastName},
		{FieldDisplayName, c.DisplayName},
		{FieldTitle, c.Title},
		{FieldEmailAddress, c.EmailAddress},
		{FieldUsername, c.Username},
		{FieldCompany, c.Company},
		{FieldLocation, c.Location},
		{FieldDepartment, c.Department},
	}
	var fields []Field
	for _, s := range set {
		if s.value != nil {
			fields = append(fields, s.field)
		}
	}
	return fields
}

func (c Changes) attributes() pod.UserAttributes {
	return pod.UserAttributes{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		DisplayName:  c.DisplayName,
		Title:        c.Title,
		EmailAddress: c.EmailAddress,
		Username:     c.Username,
		Company:      c.Company,
		Location:     c.Location,
		Department:   c.Department,
	}
}

// UpdateInput configures Update.
type UpdateInput struct {
	// User is the user to update. It must be explicit; the current identity
	// and Null are rejected.
	User resolve.Identifier
	// Changes lists the new values.
	Changes Changes
	// Mutable is the capability list. Empty means DefaultMutableFields.
	Mutable []Field
}

// UpdateOutput is returned by Update.
type UpdateOutput struct {
	// User is the updated user, or nil when User could not be resolved.
	User *pod.User
	// Applied lists the fields sent to the pod.
	Applied []Field
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Update changes attributes of an existing user. The session must hold user
// administration entitlements.
//
// Every argument is checked before any remote call: the target must be
// explicit, at least one field must change, every changed field must be in the
// capability list, and the new values must be well-formed. Violations are
// pod.ErrorCodeInvalidArgument errors.
func Update(ctx context.Context, conn *pod.Connection, in UpdateInput) (UpdateOutput, error) {
	if err := requireTarget(in.User); err != nil {
		return UpdateOutput{}, err
	}

	changed := in.Changes.Fields()
	if len(changed) == 0 {
		return UpdateOutput{}, pod.InvalidArgument("user: update has no changes")
	}

	mutable := in.Mutable
	if len(mutable) == 0 {
		mutable = DefaultMutableFields
	}
	if denied := lo.Without(changed, mutable...); len(denied) > 0 {
		return UpdateOutput{}, pod.InvalidArgument("user: fields not mutable: %s", joinFields(denied))
	}

	if err := validate.Struct(in.Changes); err != nil {
		return UpdateOutput{}, pod.InvalidArgument("user: invalid changes: %v", err)
	}

	target, err := Resolve(ctx, conn, in.User)
	if err != nil {
		return UpdateOutput{}, err
	}
	if target == nil {
		return UpdateOutput{}, nil
	}
	if target.ID == 0 {
		return UpdateOutput{}, pod.InvalidArgument("user: update requires an id")
	}

	updated, err := conn.Users().UpdateUser(ctx, target.ID, in.Changes.attributes())
	if err != nil {
		return UpdateOutput{}, err
	}
	conn.Logger().Debug().
		Int64("user_id", target.ID).
		Str("fields", joinFields(changed)).
		Msg("user updated")
	return UpdateOutput{User: updated, Applied: changed}, nil
}

const maxTargetDepth = 8

// requireTarget rejects update targets that do not name a user: the session
// identity, null, and records whose user_id is missing or null.
func requireTarget(id resolve.Identifier) error {
	for range maxTargetDepth {
		if resolve.IsCurrent(id) || resolve.IsNull(id) {
			return pod.InvalidArgument("user: update requires an explicit user")
		}
		rec, ok := id.(resolve.Record)
		if !ok {
			return nil
		}
		field, err := rec.Field(KeyUserID)
		if err != nil {
			return err
		}
		if resolve.IsCurrent(field) || resolve.IsNull(field) {
			return pod.InvalidArgument("user: update requires an id")
		}
		id = field
	}
	return nil
}

func joinFields(fields []Field) string {
	return strings.Join(lo.Map(fields, func(f Field, _ int) string { return string(f) }), ", ")
}
