package message

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/message/mock"
)

func TestServiceExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := "taro"
	posted := time.Date(2026, time.August, 4, 12, 0, 0, 0, time.UTC)

	mockRepo := mock_message.NewMockRepository(ctrl)
	mockRepo.EXPECT().ListAll(gomock.Any()).Return([]core.Message{
		{ID: "cn0k1pmhp0ggnf0tl4r0", Content: "thank you", Author: &author, IsPublic: true, CreatedAt: posted},
		{ID: "cn0k1pmhp0ggnf0tl4rg", Content: "see you next year", IsPublic: false, CreatedAt: posted.Add(time.Hour)},
	}, nil)

	s := NewService(mockRepo, &stubLimiter{}, stubVerifier{})
	data, err := s.Export(context.Background())
	if !assert.NoError(t, err) {
		return
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if assert.NoError(t, err) && assert.Len(t, rows, 3) {
		assert.Equal(t, exportHeaders, rows[0])
		assert.Equal(t, []string{"cn0k1pmhp0ggnf0tl4r0", "2026-08-04T12:00:00Z", "taro", "thank you", "Yes"}, rows[1])
		assert.Equal(t, "No", rows[2][4])
	}
}
