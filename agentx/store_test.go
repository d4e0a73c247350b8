package agentx

import (
	"testing"

	"github.com/golang/mock/gomock"
	assert "github.com/stretchr/testify/require"

	"github.com/agentxkit/agentx/mocks"
	"github.com/agentxkit/agentx/oid"
)

func TestMIBStoreGetNextWalksSubtree(t *testing.T) {
	store := NewMIBStore()
	store.Insert(oid.MustParse("1.3.6.1.1"), IntegerValue(1))
	store.Insert(oid.MustParse("1.3.6.1.2"), IntegerValue(2))
	store.Insert(oid.MustParse("1.3.6.1.3"), IntegerValue(3))
	store.Insert(oid.MustParse("1.3.6.1.4"), IntegerValue(4))

	cursor := oid.MustParse("1.3.6.1")
	var walked []int32
	for i := 0; i < 10; i++ {
		next, v, ok := store.GetNext(cursor)
		if !ok {
			break
		}
		walked = append(walked, v.Int())
		cursor = next
	}

	assert.Equal(t, []int32{1, 2, 3, 4}, walked)
}

func TestMIBStoreSubtreeIterationOrder(t *testing.T) {
	store := NewMIBStore()
	store.Insert(oid.MustParse("1.3.6.1"), IntegerValue(0))
	store.Insert(oid.MustParse("1.3.6.1.1"), IntegerValue(1))

	v, ok := store.Get(oid.MustParse("1.3.6.1"))
	assert.True(t, ok)
	assert.Equal(t, int32(0), v.Int())

	next, v, ok := store.GetNext(oid.MustParse("1.3.6.1"))
	assert.True(t, ok)
	assert.True(t, next.Equal(oid.MustParse("1.3.6.1.1")))
	assert.Equal(t, int32(1), v.Int())
}

func TestMIBStoreLongestPrefixDispatch(t *testing.T) {
	store := NewMIBStore()
	store.Insert(oid.MustParse("1.3.6.1.4.1.42"), IntegerValue(99))

	owner, v, ok := store.LongestPrefix(oid.MustParse("1.3.6.1.4.1.42.1.2.3"))
	assert.True(t, ok)
	assert.True(t, owner.Equal(oid.MustParse("1.3.6.1.4.1.42")))
	assert.Equal(t, int32(99), v.Int())

	_, _, ok = store.LongestPrefix(oid.MustParse("1.3.6"))
	assert.False(t, ok)
}

func TestDispatchRegistrationUsesLongestPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocks.NewMockValueStore(ctrl)
	requested := oid.MustParse("1.3.6.1.2.1.1.1.0")
	owner := oid.MustParse("1.3.6.1.2.1.1")

	mock.EXPECT().LongestPrefix(requested).Return(owner, IntegerValue(7), true)

	gotOwner, handler, found := DispatchRegistration(mock, requested)
	assert.True(t, found)
	assert.True(t, owner.Equal(gotOwner))
	assert.Equal(t, int32(7), handler.Int())
}

func TestDispatchRegistrationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocks.NewMockValueStore(ctrl)
	requested := oid.MustParse("2.1.1")

	mock.EXPECT().LongestPrefix(requested).Return(oid.Oid{}, Value{}, false)

	_, _, found := DispatchRegistration(mock, requested)
	assert.False(t, found)
}
