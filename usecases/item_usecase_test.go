package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/treedo/treedo-backend/mocks"
	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/repositories"
	"github.com/treedo/treedo-backend/utils"
)

type ItemUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.TodoRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor

	ctx             context.Context
	listId          string
	repositoryError error
}

func (suite *ItemUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.TodoRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)

	suite.ctx = context.Background()
	suite.listId = "0ae6fda7-f7b3-4218-9fc3-4efa329432a7"
	suite.repositoryError = errors.New("some repository error")

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
}

func (suite *ItemUsecaseTestSuite) makeUsecase() *ItemUsecase {
	return &ItemUsecase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
	}
}

func (suite *ItemUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executor.AssertExpectations(t)
}

// calledWith returns the argument at position index of every call to method, in call order.
func (suite *ItemUsecaseTestSuite) calledWith(method string, index int) []any {
	var values []any
	for _, call := range suite.repository.Calls {
		if call.Method == method {
			values = append(values, call.Arguments.Get(index))
		}
	}
	return values
}

func (suite *ItemUsecaseTestSuite) TestCreateItem() {
	attributes := models.CreateItemAttributes{ListId: suite.listId, Text: "milk"}
	updatedList := models.List{Id: suite.listId, Items: []models.ItemSnapshot{{Id: "new", Text: "milk"}}}

	suite.repository.On("CreateItem", mock.Anything, suite.executor, attributes, mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("GetItemById", mock.Anything, suite.executor, mock.AnythingOfType("string")).
		Return(func(ctx context.Context, exec repositories.Executor, itemId string) models.Item {
			return models.Item{Id: itemId, Text: "milk"}
		}, nil)
	suite.repository.On("AppendItemSnapshot", mock.Anything, suite.executor, suite.listId,
		mock.MatchedBy(func(s models.ItemSnapshot) bool { return s.Text == "milk" && s.Id != "" })).Return(nil)
	suite.repository.On("CreateList", mock.Anything, suite.executor,
		mock.MatchedBy(func(a models.CreateListAttributes) bool { return a.LinkingItemId != nil && a.Title == "milk" }),
		mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("GetListById", mock.Anything, suite.executor, suite.listId).Return(updatedList, nil)

	list, err := suite.makeUsecase().CreateItem(suite.ctx, attributes)

	suite.NoError(err)
	suite.Equal(updatedList, list)
	suite.Equal("/", list.ViewPath())

	itemId := suite.calledWith("CreateItem", 3)[0].(string)
	snapshot := suite.calledWith("AppendItemSnapshot", 3)[0].(models.ItemSnapshot)
	childList := suite.calledWith("CreateList", 2)[0].(models.CreateListAttributes)
	childListId := suite.calledWith("CreateList", 3)[0].(string)
	suite.Equal(itemId, snapshot.Id)
	suite.Equal(itemId, *childList.LinkingItemId)
	suite.NotEqual(itemId, childListId)
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestCreateItem_missing_list_id() {
	_, err := suite.makeUsecase().CreateItem(suite.ctx, models.CreateItemAttributes{Text: "milk"})

	suite.ErrorIs(err, models.BadParameterError)
	suite.Empty(suite.repository.Calls)
}

func (suite *ItemUsecaseTestSuite) TestCreateItem_target_list_gone() {
	attributes := models.CreateItemAttributes{ListId: suite.listId, Text: "milk"}
	suite.repository.On("CreateItem", mock.Anything, suite.executor, attributes, mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("GetItemById", mock.Anything, suite.executor, mock.AnythingOfType("string")).
		Return(models.Item{Id: "new", Text: "milk"}, nil)
	suite.repository.On("AppendItemSnapshot", mock.Anything, suite.executor, suite.listId, mock.Anything).
		Return(errors.Wrap(models.NotFoundError, "list does not exist"))

	_, err := suite.makeUsecase().CreateItem(suite.ctx, attributes)

	suite.ErrorIs(err, models.NotFoundError)
	suite.repository.AssertNotCalled(suite.T(), "CreateList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestCreateItem_repository_error() {
	attributes := models.CreateItemAttributes{ListId: suite.listId, Text: "milk"}
	suite.repository.On("CreateItem", mock.Anything, suite.executor, attributes, mock.AnythingOfType("string")).
		Return(suite.repositoryError)

	_, err := suite.makeUsecase().CreateItem(suite.ctx, attributes)

	suite.ErrorIs(err, suite.repositoryError)
	suite.AssertExpectations()
}

// A holds B and C, B holds D, C never got a child list.
func (suite *ItemUsecaseTestSuite) setupSubtree() {
	a, b := "A", "B"
	d := "D"
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "A").Return(models.List{
		Id: "list-A", LinkingItemId: &a, Items: []models.ItemSnapshot{{Id: "B"}, {Id: "C"}},
	}, nil)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "B").Return(models.List{
		Id: "list-B", LinkingItemId: &b, Items: []models.ItemSnapshot{{Id: "D"}},
	}, nil)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "C").
		Return(models.List{}, models.NotFoundError)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "D").Return(models.List{
		Id: "list-D", LinkingItemId: &d,
	}, nil)
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree() {
	attributes := models.DeleteItemAttributes{ItemId: "A", ContainingListId: suite.listId}
	remaining := models.List{Id: suite.listId}

	suite.repository.On("RemoveItemSnapshot", mock.Anything, suite.executor, suite.listId, "A").Return(nil)
	suite.setupSubtree()
	suite.repository.On("DeleteListByLinkingItemId", mock.Anything, suite.executor, mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("DeleteItem", mock.Anything, suite.executor, mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("GetListById", mock.Anything, suite.executor, suite.listId).Return(remaining, nil)

	list, err := suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, attributes)

	suite.NoError(err)
	suite.Equal(remaining, list)
	suite.Equal([]any{"A", "B", "D", "C"}, suite.calledWith("GetListByLinkingItemId", 2))
	suite.Equal([]any{"C", "D", "B", "A"}, suite.calledWith("DeleteItem", 2))
	suite.Equal([]any{"C", "D", "B", "A"}, suite.calledWith("DeleteListByLinkingItemId", 2))

	// each child list goes right before its item
	var deletes []string
	for _, call := range suite.repository.Calls {
		switch call.Method {
		case "DeleteListByLinkingItemId":
			deletes = append(deletes, "list-"+call.Arguments.String(2))
		case "DeleteItem":
			deletes = append(deletes, call.Arguments.String(2))
		}
	}
	suite.Equal([]string{"list-C", "C", "list-D", "D", "list-B", "B", "list-A", "A"}, deletes)
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree_child_list_already_gone() {
	attributes := models.DeleteItemAttributes{ItemId: "A", ContainingListId: suite.listId}

	suite.repository.On("RemoveItemSnapshot", mock.Anything, suite.executor, suite.listId, "A").Return(nil)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "A").
		Return(models.List{}, models.NotFoundError)
	suite.repository.On("DeleteListByLinkingItemId", mock.Anything, suite.executor, "A").Return(nil)
	suite.repository.On("DeleteItem", mock.Anything, suite.executor, "A").Return(nil)
	suite.repository.On("GetListById", mock.Anything, suite.executor, suite.listId).Return(models.List{Id: suite.listId}, nil)

	_, err := suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, attributes)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree_repository_calls_run_inside_the_span() {
	recorder := tracetest.NewSpanRecorder()
	tracer := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)).Tracer("test")
	ctx := utils.StoreOpenTelemetryTracerInContext(suite.ctx, tracer)
	attributes := models.DeleteItemAttributes{ItemId: "A", ContainingListId: suite.listId}

	suite.repository.On("RemoveItemSnapshot", mock.Anything, suite.executor, suite.listId, "A").Return(nil)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "A").
		Return(models.List{}, models.NotFoundError)
	suite.repository.On("DeleteListByLinkingItemId", mock.Anything, suite.executor, "A").Return(nil)
	suite.repository.On("DeleteItem", mock.Anything, suite.executor, "A").Return(nil)
	suite.repository.On("GetListById", mock.Anything, suite.executor, suite.listId).Return(models.List{Id: suite.listId}, nil)

	_, err := suite.makeUsecase().DeleteItemAndSubtree(ctx, attributes)

	suite.NoError(err)
	spans := recorder.Ended()
	suite.Require().Len(spans, 1)
	suite.Equal("ItemUsecase.DeleteItemAndSubtree", spans[0].Name())
	for _, method := range []string{"RemoveItemSnapshot", "DeleteListByLinkingItemId", "DeleteItem", "GetListById"} {
		repositoryCtx := suite.calledWith(method, 0)[0].(context.Context)
		suite.Equal(spans[0].SpanContext().SpanID(), trace.SpanContextFromContext(repositoryCtx).SpanID(), method)
	}
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree_cycle() {
	attributes := models.DeleteItemAttributes{ItemId: "A", ContainingListId: suite.listId}
	a, b := "A", "B"

	suite.repository.On("RemoveItemSnapshot", mock.Anything, suite.executor, suite.listId, "A").Return(nil)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "A").Return(models.List{
		Id: "list-A", LinkingItemId: &a, Items: []models.ItemSnapshot{{Id: "B"}},
	}, nil)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "B").Return(models.List{
		Id: "list-B", LinkingItemId: &b, Items: []models.ItemSnapshot{{Id: "A"}},
	}, nil)
	suite.repository.On("DeleteListByLinkingItemId", mock.Anything, suite.executor, mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("DeleteItem", mock.Anything, suite.executor, mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("GetListById", mock.Anything, suite.executor, suite.listId).Return(models.List{Id: suite.listId}, nil)

	_, err := suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, attributes)

	suite.NoError(err)
	suite.Equal([]any{"B", "A"}, suite.calledWith("DeleteItem", 2))
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree_containing_list_gone() {
	attributes := models.DeleteItemAttributes{ItemId: "A", ContainingListId: suite.listId}
	suite.repository.On("RemoveItemSnapshot", mock.Anything, suite.executor, suite.listId, "A").
		Return(errors.Wrap(models.NotFoundError, "list does not exist"))

	_, err := suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, attributes)

	suite.ErrorIs(err, models.NotFoundError)
	suite.repository.AssertNotCalled(suite.T(), "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree_walk_error_deletes_nothing() {
	attributes := models.DeleteItemAttributes{ItemId: "A", ContainingListId: suite.listId}
	suite.repository.On("RemoveItemSnapshot", mock.Anything, suite.executor, suite.listId, "A").Return(nil)
	suite.repository.On("GetListByLinkingItemId", mock.Anything, suite.executor, "A").
		Return(models.List{}, suite.repositoryError)

	_, err := suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, attributes)

	suite.ErrorIs(err, suite.repositoryError)
	suite.repository.AssertNotCalled(suite.T(), "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
	suite.repository.AssertNotCalled(suite.T(), "DeleteListByLinkingItemId", mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree_delete_error_is_surfaced() {
	attributes := models.DeleteItemAttributes{ItemId: "A", ContainingListId: suite.listId}
	suite.repository.On("RemoveItemSnapshot", mock.Anything, suite.executor, suite.listId, "A").Return(nil)
	suite.setupSubtree()
	suite.repository.On("DeleteListByLinkingItemId", mock.Anything, suite.executor, mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("DeleteItem", mock.Anything, suite.executor, "C").Return(nil)
	suite.repository.On("DeleteItem", mock.Anything, suite.executor, "D").Return(suite.repositoryError)

	_, err := suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, attributes)

	suite.ErrorIs(err, suite.repositoryError)
	suite.Equal([]any{"C", "D"}, suite.calledWith("DeleteItem", 2))
	suite.repository.AssertNotCalled(suite.T(), "GetListById", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemUsecaseTestSuite) TestDeleteItemAndSubtree_missing_ids() {
	_, err := suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, models.DeleteItemAttributes{ContainingListId: suite.listId})
	suite.ErrorIs(err, models.BadParameterError)

	_, err = suite.makeUsecase().DeleteItemAndSubtree(suite.ctx, models.DeleteItemAttributes{ItemId: "A"})
	suite.ErrorIs(err, models.BadParameterError)

	suite.Empty(suite.repository.Calls)
}

func TestItemUsecase(t *testing.T) {
	suite.Run(t, new(ItemUsecaseTestSuite))
}
