package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/domain/entity"
	repomocks "github.com/bnema/chatdeck/internal/domain/repository/mocks"
)

func TestManageConversationsUseCase_Create_DefaultsTitle(t *testing.T) {
	ctx := testContext()

	convRepo := repomocks.NewMockConversationRepository(t)
	convRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Conversation) bool {
		return c.Title == "New conversation" && c.ID != ""
	})).Return(nil)

	uc := usecase.NewManageConversationsUseCase(convRepo)

	conv, err := uc.Create(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, "New conversation", conv.Title)
}

func TestManageConversationsUseCase_Create_WrapsRepoError(t *testing.T) {
	ctx := testContext()

	convRepo := repomocks.NewMockConversationRepository(t)
	convRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := usecase.NewManageConversationsUseCase(convRepo).Create(ctx, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create conversation")
}

func TestManageConversationsUseCase_Rename_RejectsEmptyTitle(t *testing.T) {
	ctx := testContext()

	convRepo := repomocks.NewMockConversationRepository(t)
	uc := usecase.NewManageConversationsUseCase(convRepo)

	err := uc.Rename(ctx, "abc", "  ")
	assert.ErrorIs(t, err, entity.ErrInvalidConversation)
}

func TestManageConversationsUseCase_Rename_NotFound(t *testing.T) {
	ctx := testContext()

	convRepo := repomocks.NewMockConversationRepository(t)
	convRepo.EXPECT().FindByID(mock.Anything, entity.ConversationID("abc")).Return(nil, entity.ErrConversationNotFound)

	err := usecase.NewManageConversationsUseCase(convRepo).Rename(ctx, "abc", "Renamed")
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)
}

func TestManageConversationsUseCase_ReplaceMessages_RenumbersFromZero(t *testing.T) {
	ctx := testContext()
	id := entity.ConversationID("abc")

	convRepo := repomocks.NewMockConversationRepository(t)
	convRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Conversation{ID: id, Title: "t"}, nil)

	var stored []entity.Message
	convRepo.EXPECT().ReplaceMessages(mock.Anything, id, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.ConversationID, msgs []entity.Message) error {
			stored = msgs
			return nil
		})

	uc := usecase.NewManageConversationsUseCase(convRepo)
	err := uc.ReplaceMessages(ctx, id, []entity.Message{
		{Role: entity.RoleUser, Content: "hi", Position: 7},
		{Role: entity.RoleAssistant, Content: "hello", Position: 3},
	})
	require.NoError(t, err)

	require.Len(t, stored, 2)
	for i, m := range stored {
		assert.Equal(t, i, m.Position)
		assert.Equal(t, id, m.ConversationID)
		assert.False(t, m.CreatedAt.IsZero())
	}
}

func TestManageConversationsUseCase_ReplaceMessages_RejectsInvalidRole(t *testing.T) {
	ctx := testContext()

	convRepo := repomocks.NewMockConversationRepository(t)
	uc := usecase.NewManageConversationsUseCase(convRepo)

	err := uc.ReplaceMessages(ctx, "abc", []entity.Message{{Role: "robot", Content: "beep"}})
	assert.ErrorIs(t, err, entity.ErrInvalidMessage)
}

func TestManageConversationsUseCase_Get_ReturnsMessages(t *testing.T) {
	ctx := testContext()
	id := entity.ConversationID("abc")

	convRepo := repomocks.NewMockConversationRepository(t)
	convRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Conversation{ID: id, Title: "t"}, nil)
	convRepo.EXPECT().Messages(mock.Anything, id).Return([]entity.Message{{Role: entity.RoleUser, Content: "q"}}, nil)

	conv, msgs, err := usecase.NewManageConversationsUseCase(convRepo).Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, conv.ID)
	assert.Len(t, msgs, 1)
}

func TestManageConversationsUseCase_Get_NilConversationIsNotFound(t *testing.T) {
	ctx := testContext()

	convRepo := repomocks.NewMockConversationRepository(t)
	convRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil)

	_, _, err := usecase.NewManageConversationsUseCase(convRepo).Get(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)
}
