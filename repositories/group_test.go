package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_Create(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repository := NewGroupRepository(db, slog.Default())

	// When a group is created
	req.NoError(repository.Create("lobby", "alice"))

	// Then its creator is its only member
	members, err := repository.MembersOf("lobby")
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"alice"}, members)
}

func TestGroupRepository_Create_Twice_Fails_And_Keeps_Members(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repository := NewGroupRepository(db, slog.Default())

	req.NoError(repository.Create("lobby", "alice"))
	req.NoError(repository.Join("lobby", "bob"))

	err := repository.Create("lobby", "mallory")
	req.ErrorIs(err, errors.ErrGroupAlreadyExists)

	members, err := repository.MembersOf("lobby")
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"alice", "bob"}, members)
}

func TestGroupRepository_Join_Appends_In_Order_With_Duplicates(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repository := NewGroupRepository(db, slog.Default())

	req.NoError(repository.Create("lobby", "A"))
	req.NoError(repository.Join("lobby", "B"))
	req.NoError(repository.Join("lobby", "A"))

	members, err := repository.MembersOf("lobby")
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"A", "B", "A"}, members)
}

func TestGroupRepository_Unknown_Group(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repository := NewGroupRepository(db, slog.Default())

	err := repository.Join("ghost", "A")
	req.ErrorIs(err, errors.ErrGroupNotFound)
	req.NotErrorIs(err, errors.ErrStorage)

	_, err = repository.MembersOf("ghost")
	req.ErrorIs(err, errors.ErrGroupNotFound)
}

func TestGroupRepository_Concurrent_Joins_Are_Not_Lost(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repository := NewGroupRepository(db, slog.Default())
	req.NoError(repository.Create("lobby", "creator"))

	const joiners = 64
	expected := []domain.ConnectionID{"creator"}
	var wg sync.WaitGroup
	errs := make(chan error, joiners)
	for i := 0; i < joiners; i++ {
		id := domain.ConnectionID(fmt.Sprintf("member-%d", i))
		expected = append(expected, id)
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repository.Join("lobby", id)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	members, err := repository.MembersOf("lobby")
	req.NoError(err)
	req.Len(members, joiners+1)
	req.Equal(domain.ConnectionID("creator"), members[0])
	req.ElementsMatch(expected, members)
}

func TestGroupRepository_Members_Do_Not_Leak_Between_Groups(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repository := NewGroupRepository(db, slog.Default())

	// "a" is a prefix of "a:b" once the separator is added
	req.NoError(repository.Create("a", "A"))
	req.NoError(repository.Create("a:b", "B"))
	req.NoError(repository.Create("a:", "C"))
	req.NoError(repository.Join("a:b", "X"))
	req.NoError(repository.Join("a:", "Y"))
	req.NoError(repository.Join("a", "Z"))

	for name, expected := range map[domain.GroupName][]domain.ConnectionID{
		"a":   {"A", "Z"},
		"a:b": {"B", "X"},
		"a:":  {"C", "Y"},
	} {
		members, err := repository.MembersOf(name)
		req.NoError(err)
		req.Equal(expected, members, name)
	}
}

func TestGroupRepository_Join_Order_Survives_Reopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	open := func() *badger.DB {
		db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
		req.NoError(err)
		return db
	}

	db := open()
	repository := NewGroupRepository(db, slog.Default())
	req.NoError(repository.Create("lobby", "A"))
	req.NoError(repository.Join("lobby", "B"))
	req.NoError(repository.Close())
	req.NoError(db.Close())

	// The sequence restarts after the leased range, order is kept
	db = open()
	defer db.Close()
	repository = NewGroupRepository(db, slog.Default())
	req.NoError(repository.Join("lobby", "C"))

	members, err := repository.MembersOf("lobby")
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"A", "B", "C"}, members)
	req.NoError(repository.Close())
}

func TestGroupRepository_Get_Keeps_Metadata(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repository := NewGroupRepository(db, slog.Default())
	repository.now = func() time.Time { return at }

	req.NoError(repository.Create("lobby", "alice"))

	group, err := repository.Get("lobby")
	req.NoError(err)
	req.Equal(domain.Group{
		Name:      "lobby",
		CreatedBy: "alice",
		Members:   []domain.ConnectionID{"alice"},
		CreatedAt: at,
	}, group)
}

func TestDescribeRecord(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	groups := NewGroupRepository(db, slog.Default())
	req.NoError(groups.Create("lobby", "alice"))

	bytes, err := encodeGroup(domain.NewGroup("lobby", "alice", time.Now()))
	req.NoError(err)

	record := DescribeRecord("group:lobby", bytes)
	req.Equal("GROUP", record.Type)
	req.Equal("lobby", record.ID)
	req.Equal("createdBy=alice", record.Detail)

	req.NoError(groups.Join("lobby", "bob"))
	var member Record
	req.NoError(db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := memberKeyPrefix("lobby")
		it.Seek(prefix)
		req.True(it.ValidForPrefix(prefix))
		return it.Item().Value(func(val []byte) error {
			member = DescribeRecord(string(it.Item().Key()), val)
			return nil
		})
	}))
	req.Equal("MEMBER", member.Type)
	req.Equal("lobby", member.ID)
	req.Equal("member=bob", member.Detail)

	raw := DescribeRecord("other:key", []byte("abc"))
	req.Equal("RAW", raw.Type)
	req.Equal("Size: 3 bytes", raw.Detail)
}

func TestParseMemberKey(t *testing.T) {
	name, ok := parseMemberKey(string(memberKey("a:b", 7)))
	require.True(t, ok)
	require.Equal(t, domain.GroupName("a:b"), name)

	for _, key := range []string{"member:", "member:x:lobby:1", "member:9:lobby:1", "member:5:lobby"} {
		_, ok := parseMemberKey(key)
		require.False(t, ok, key)
	}
}
