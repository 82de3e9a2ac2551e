package repositories

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	groupPrefix  = "group:"
	memberPrefix = "member:"
	memberSeqKey = "seq:member"
	// Sequence numbers leased per disk write
	memberSeqBandwidth = 256
)

var _ contract.IGroupStore = (*GroupRepository)(nil)

// GroupRepository stores the group header under group:{name} and every join
// as its own key, member:{len(name)}:{name}:{seq}. A join never rewrites a
// shared key, so concurrent joins don't conflict.
type GroupRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time

	seqOnce sync.Once
	seq     *badger.Sequence
	seqErr  error
}

func NewGroupRepository(db *badger.DB, log *slog.Logger) *GroupRepository {
	return &GroupRepository{db: db, log: log, now: time.Now}
}

func groupKey(name domain.GroupName) []byte {
	return []byte(groupPrefix + string(name))
}

// memberKeyPrefix is length-prefixed so that "a" never matches the members
// of "a:b".
func memberKeyPrefix(name domain.GroupName) []byte {
	return []byte(memberPrefix + strconv.Itoa(len(name)) + ":" + string(name) + ":")
}

// Zero-padded so that key order is join order.
func memberKey(name domain.GroupName, seq uint64) []byte {
	return append(memberKeyPrefix(name), fmt.Sprintf("%020d", seq)...)
}

// parseMemberKey returns the group name of a member key.
func parseMemberKey(key string) (domain.GroupName, bool) {
	rest := strings.TrimPrefix(key, memberPrefix)
	size, rest, ok := strings.Cut(rest, ":")
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(size)
	if err != nil || n < 0 || len(rest) < n+1 || rest[n] != ':' {
		return "", false
	}
	return domain.GroupName(rest[:n]), true
}

func (g *GroupRepository) nextSeq() (uint64, error) {
	g.seqOnce.Do(func() {
		g.seq, g.seqErr = g.db.GetSequence([]byte(memberSeqKey), memberSeqBandwidth)
	})
	if g.seqErr != nil {
		return 0, g.seqErr
	}
	return g.seq.Next()
}

// Close releases the unused part of the leased sequence range.
// Call it before closing the store.
func (g *GroupRepository) Close() error {
	if g.seq == nil {
		return nil
	}
	return g.seq.Release()
}

// Create stores a group whose only member is its creator.
// An existing group is never overwritten: ErrGroupAlreadyExists is returned.
func (g *GroupRepository) Create(name domain.GroupName, creator domain.ConnectionID) error {
	bytes, err := encodeGroup(domain.NewGroup(name, creator, g.now().UTC()))
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStorage, err)
	}
	err = g.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(groupKey(name))
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", errors.ErrGroupAlreadyExists, name)
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(groupKey(name), bytes)
	})
	return wrapStorage(err, "create group %s", name)
}

// Join records the membership under a fresh key. The transaction only reads
// the group header, which is written once by Create, so it can't conflict
// with other joins.
func (g *GroupRepository) Join(name domain.GroupName, id domain.ConnectionID) error {
	seq, err := g.nextSeq()
	if err != nil {
		return wrapStorage(err, "join group %s", name)
	}
	value, err := proto.Marshal(wrapperspb.String(string(id)))
	if err != nil {
		return wrapStorage(err, "join group %s", name)
	}
	err = g.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(groupKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrGroupNotFound, name)
		}
		if err != nil {
			return err
		}
		return txn.Set(memberKey(name, seq), value)
	})
	return wrapStorage(err, "join group %s", name)
}

// MembersOf returns the members in join order.
func (g *GroupRepository) MembersOf(name domain.GroupName) ([]domain.ConnectionID, error) {
	group, err := g.Get(name)
	if err != nil {
		return nil, err
	}
	return group.Members, nil
}

func (g *GroupRepository) Get(name domain.GroupName) (domain.Group, error) {
	var group domain.Group
	err := g.db.View(func(txn *badger.Txn) error {
		var err error
		group, err = getGroup(txn, name)
		return err
	})
	if err != nil {
		return domain.Group{}, wrapStorage(err, "get group %s", name)
	}
	return group, nil
}

// getGroup reads the header then appends the joined members in key order.
func getGroup(txn *badger.Txn, name domain.GroupName) (domain.Group, error) {
	group, err := getGroupHeader(txn, name)
	if err != nil {
		return domain.Group{}, err
	}

	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	prefix := memberKeyPrefix(name)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var member domain.ConnectionID
		err := it.Item().Value(func(val []byte) error {
			var decodeErr error
			member, decodeErr = decodeMember(val)
			return decodeErr
		})
		if err != nil {
			return domain.Group{}, err
		}
		group.Join(member)
	}
	return group, nil
}

func getGroupHeader(txn *badger.Txn, name domain.GroupName) (domain.Group, error) {
	item, err := txn.Get(groupKey(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Group{}, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, name)
	}
	if err != nil {
		return domain.Group{}, err
	}
	var group domain.Group
	err = item.Value(func(val []byte) error {
		group, err = decodeGroup(val)
		return err
	})
	return group, err
}

// wrapStorage leaves domain errors untouched and tags everything else as a
// storage failure.
func wrapStorage(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errors.ErrGroupNotFound) || errors.Is(err, errors.ErrGroupAlreadyExists) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", errors.ErrStorage, fmt.Sprintf(format, args...), err)
}

func encodeGroup(group domain.Group) ([]byte, error) {
	members := lo.Map(group.Members, func(id domain.ConnectionID, _ int) any {
		return string(id)
	})
	record, err := structpb.NewStruct(map[string]any{
		"groupName": string(group.Name),
		"createdBy": string(group.CreatedBy),
		"members":   members,
		"createdAt": group.CreatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(record)
}

func decodeMember(val []byte) (domain.ConnectionID, error) {
	var member wrapperspb.StringValue
	if err := proto.Unmarshal(val, &member); err != nil {
		return "", err
	}
	return domain.ConnectionID(member.GetValue()), nil
}

func decodeGroup(val []byte) (domain.Group, error) {
	var record structpb.Struct
	if err := proto.Unmarshal(val, &record); err != nil {
		return domain.Group{}, err
	}
	fields := record.GetFields()
	createdAt, err := time.Parse(time.RFC3339Nano, fields["createdAt"].GetStringValue())
	if err != nil {
		return domain.Group{}, fmt.Errorf("malformed group record: %w", err)
	}
	members := lo.Map(fields["members"].GetListValue().GetValues(), func(v *structpb.Value, _ int) domain.ConnectionID {
		return domain.ConnectionID(v.GetStringValue())
	})
	return domain.Group{
		Name:      domain.GroupName(fields["groupName"].GetStringValue()),
		CreatedBy: domain.ConnectionID(fields["createdBy"].GetStringValue()),
		Members:   members,
		CreatedAt: createdAt,
	}, nil
}
