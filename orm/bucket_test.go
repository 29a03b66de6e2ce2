package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
)

// Counter is a test model backed by protobuf serialization
type Counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

var _ CloneableData = (*Counter)(nil)

func NewCounter(count int64) *Counter {
	return &Counter{Count: count}
}

func (c *Counter) Reset()         { *c = Counter{} }
func (c *Counter) String() string { return proto.CompactTextString(c) }
func (*Counter) ProtoMessage()    {}

// counterPlain mirrors Counter without the Marshaler/Unmarshaler
// methods, so proto.Marshal uses its generic encoder instead of
// dispatching back into Counter.Marshal.
type counterPlain Counter

func (c *counterPlain) Reset()         { *c = counterPlain{} }
func (c *counterPlain) String() string { return proto.CompactTextString(c) }
func (*counterPlain) ProtoMessage()    {}

func (c *Counter) Marshal() ([]byte, error) {
	return proto.Marshal((*counterPlain)(c))
}

func (c *Counter) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*counterPlain)(c))
}

// Validate rejects negative counters
func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrInvalidState, "negative counter")
	}
	return nil
}

func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

func TestBucketName(t *testing.T) {
	obj := NewSimpleObj(nil, &Counter{})

	assert.Panics(t, func() {
		// An invalid bucket name must crash.
		NewBucket("l33t", obj)
	})
}

func TestBucketCannotSaveInvalid(t *testing.T) {
	counter := &Counter{
		Count: -999, // Negative value is not valid.
	}
	require.Error(t, counter.Validate())

	o := NewSimpleObj([]byte("mykey"), counter)
	b := NewBucket("mybucket", o)

	db := store.MemStore()
	if err := b.Save(db, o); !errors.ErrInvalidState.Is(err) {
		t.Fatalf("invalid object must not save: %+v", err)
	}
}

func TestBucketGetSave(t *testing.T) {
	counter := NewCounter(848)
	require.NoError(t, counter.Validate())

	o := NewSimpleObj([]byte("mykey"), counter)
	b := NewBucket("mybucket", o)

	db := store.MemStore()
	require.NoError(t, b.Save(db, o))

	res, err := b.Get(db, []byte("mykey"))
	require.NoError(t, err)
	require.NotNil(t, res)

	c, ok := res.Value().(*Counter)
	require.True(t, ok)
	assert.Equal(t, int64(848), c.Count)

	// overwrite with a new state
	c.Count = 59
	require.NoError(t, b.Save(db, res))

	res, err = b.Get(db, []byte("mykey"))
	require.NoError(t, err)
	c, ok = res.Value().(*Counter)
	require.True(t, ok)
	assert.Equal(t, int64(59), c.Count)

	// miss on an unknown key
	missing, err := b.Get(db, []byte("not-here"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBucketDelete(t *testing.T) {
	b := NewBucket("delme", NewSimpleObj(nil, &Counter{}))
	db := store.MemStore()

	key := []byte("short-lived")
	require.NoError(t, b.Save(db, NewSimpleObj(key, NewCounter(7))))

	obj, err := b.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, obj)

	require.NoError(t, b.Delete(db, key))
	obj, err = b.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)

	// deleting a missing key is a noop
	require.NoError(t, b.Delete(db, []byte("ghost")))
}

func TestBucketQuery(t *testing.T) {
	const name = "pets"

	b := NewBucket(name, NewSimpleObj(nil, &Counter{}))
	db := store.MemStore()

	require.NoError(t, b.Save(db, NewSimpleObj([]byte("cat"), NewCounter(4))))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("caterpillar"), NewCounter(100))))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("dog"), NewCounter(2))))

	qr := nftoken.NewQueryRouter()
	b.Register("", qr)
	h := qr.Handler("/" + name)
	require.NotNil(t, h)

	// exact key query returns one model with the full db key
	res, err := h.Query(db, nftoken.KeyQueryMod, []byte("dog"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []byte(name+":dog"), res[0].Key)
	got, err := b.Parse([]byte("dog"), res[0].Value)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Value().(*Counter).Count)

	// a miss returns nothing
	res, err = h.Query(db, nftoken.KeyQueryMod, []byte("bird"))
	require.NoError(t, err)
	assert.Len(t, res, 0)

	// prefix query returns all matches in key order
	res, err = h.Query(db, nftoken.PrefixQueryMod, []byte("cat"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, []byte(name+":cat"), res[0].Key)
	assert.Equal(t, []byte(name+":caterpillar"), res[1].Key)

	// unknown modifier is rejected
	_, err = h.Query(db, "range", []byte("cat"))
	assert.Error(t, err)
}

func TestSimpleObjClone(t *testing.T) {
	orig := NewSimpleObj([]byte("stamp"), NewCounter(5))
	cpy := orig.Clone()

	// mutating the copy leaves the original untouched
	cpy.SetKey([]byte("forgery"))
	cpy.Value().(*Counter).Count = 666

	assert.Equal(t, []byte("stamp"), orig.Key())
	assert.Equal(t, int64(5), orig.Value().(*Counter).Count)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		start  []byte
		end    []byte
	}{
		"normal":                 {[]byte{1, 3, 4}, []byte{1, 3, 4}, []byte{1, 3, 5}},
		"empty":                  {nil, nil, nil},
		"trailing 255":           {[]byte{1, 3, 255}, []byte{1, 3, 255}, []byte{1, 4, 0}},
		"only 255s has no limit": {[]byte{255, 255}, []byte{255, 255}, nil},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
