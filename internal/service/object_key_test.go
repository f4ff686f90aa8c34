package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lexdraft/internal/service"
)

func TestObjectKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a52-9a59-4a8e-9a2f-0e0f3c1c7b10")
	now := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"extractions/2024/03/6f1c2a52-9a59-4a8e-9a2f-0e0f3c1c7b10/my_lease.pdf",
		service.ObjectKey(id, `C:\Users\me\my lease.pdf`, now))
	assert.Equal(t,
		"extractions/2024/03/6f1c2a52-9a59-4a8e-9a2f-0e0f3c1c7b10/document",
		service.ObjectKey(id, "", now))
	assert.Equal(t,
		"extractions/2024/03/6f1c2a52-9a59-4a8e-9a2f-0e0f3c1c7b10/عقد.pdf",
		service.ObjectKey(id, "../عقد.pdf", now))
}
