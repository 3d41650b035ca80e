package combatlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/tactics-engine/internal/errors"
	combatlog "github.com/KirkDiggler/tactics-engine/internal/repositories/combat_log"
	combatlogmock "github.com/KirkDiggler/tactics-engine/internal/repositories/combat_log/mock"
)

func TestSink_SwallowsStorageFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := combatlogmock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis is down"))

	sink := combatlog.NewSink(mockRepo, testEncounterID)

	// Must not panic or surface the error in any way.
	assert.NotPanics(t, func() {
		sink.Send("COMBAT", "Askell attacks Grim")
	})
}

func TestSink_ForwardsCategoryAndText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := combatlogmock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Append(gomock.Any(), gomock.AssignableToTypeOf(combatlog.AppendInput{})).
		DoAndReturn(func(_ any, input combatlog.AppendInput) (*combatlog.AppendOutput, error) {
			assert.Equal(t, testEncounterID, input.EncounterID)
			assert.Equal(t, "COMBAT", input.Entry.Category)
			assert.Equal(t, "Grim blocks the attack", input.Entry.Text)
			return &combatlog.AppendOutput{}, nil
		})

	sink := combatlog.NewSink(mockRepo, testEncounterID)
	sink.Send("COMBAT", "Grim blocks the attack")
}
