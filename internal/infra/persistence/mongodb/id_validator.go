package mongodb

import "fittrack/internal/domain/service"

type objectIDValidator struct{}

// NewIDValidator returns an IDValidator accepting 24-character hex ObjectIDs.
func NewIDValidator() service.IDValidator {
	return objectIDValidator{}
}

func (objectIDValidator) IsValid(id string) bool {
	_, err := parseObjectID(id)

	return err == nil
}
