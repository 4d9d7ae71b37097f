// Subscription Registry (C7): stores long-lived subscription
// registrations keyed by field name and delivers events by re-running
// selections (spec.md §3, §4.7).
//
// No teacher file implements subscriptions over this Object model (the
// teacher's gorilla/websocket and gocloud.dev requires sit unused in the
// retrieved sources — they back its own transport layer, out of scope
// here). The registry is built from spec.md §3's registration invariant
// and §4.7's pseudocode directly; its single-mutex, single-writer model
// follows the teacher's Context's single-owner-per-request mutation style
// (context.go), generalized to a table that outlives any one request.
package gqlcore

import (
	"context"
	"log"
	"os"
	"sort"
	"sync"

	"gocloud.dev/pubsub"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/future"
	"github.com/shyptr/gqlcore/value"
)

// SubscriptionKey identifies one live subscription registration. Keys are
// only guaranteed unique between a registration's own Subscribe and
// Unsubscribe calls: the compaction rule in §9's design notes can reuse a
// retired key's numeric value.
type SubscriptionKey uint64

// SubscriptionCallback is invoked once per delivery matching a
// registration (spec.md §6: "callback: Future<Value> -> ()"). It runs
// synchronously on the delivering call; long work must be deferred inside
// the callback itself.
type SubscriptionCallback func(*future.Future)

type registration struct {
	key                SubscriptionKey
	state              interface{}
	fieldNames         map[string]struct{}
	queryAST           ast.Node
	operationName      string
	callback           SubscriptionCallback
	fragments          FragmentMap
	variables          value.Value
	selection          ast.Node
	subscriptionObject *Object
}

// RegistryOption configures a SubscriptionRegistry at construction time,
// matching the teacher's functional-options convention (options.go's
// SchemaBuilderOption).
type RegistryOption func(*SubscriptionRegistry)

// WithLogger overrides the registry's default stderr logger, used only to
// report registry-internal anomalies (a recovered callback panic, a failed
// fan-out encode or publish).
func WithLogger(logger *log.Logger) RegistryOption {
	return func(r *SubscriptionRegistry) { r.logger = logger }
}

// WithFanoutTopic configures an optional gocloud.dev/pubsub topic that
// mirrors every delivered response (including error responses),
// best-effort, so a process embedding
// the engine can fan delivered events out to other processes without the
// registry's correctness invariant (spec.md §3) depending on the topic
// being reachable.
func WithFanoutTopic(topic *pubsub.Topic) RegistryOption {
	return func(r *SubscriptionRegistry) { r.topic = topic }
}

// SubscriptionRegistry implements C7. All public methods serialize through
// a single mutex (spec.md §5: "serialize subscribe/unsubscribe/deliver via
// a single mutex"); fine-grained per-field locking is not required.
type SubscriptionRegistry struct {
	mu             sync.Mutex
	operationTypes map[string]*Object
	nextKey        SubscriptionKey
	subscriptions  map[SubscriptionKey]*registration
	listeners      map[string]map[SubscriptionKey]struct{}
	logger         *log.Logger
	topic          *pubsub.Topic
}

// NewSubscriptionRegistry constructs an empty registry. operationTypes
// supplies the default root Object used by Deliver's default-object rule
// (spec.md §4.7).
func NewSubscriptionRegistry(operationTypes map[string]*Object, opts ...RegistryOption) *SubscriptionRegistry {
	r := &SubscriptionRegistry{
		operationTypes: operationTypes,
		subscriptions:  make(map[SubscriptionKey]*registration),
		listeners:      make(map[string]map[SubscriptionKey]struct{}),
		logger:         log.New(os.Stderr, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe registers a subscription operation (spec.md §4.7). Unlike
// Resolve, fragment expansion is not performed when collecting the event
// keys: field-name identity of the operation's direct selections is the
// event key, per spec.md §4.7 step 2.
func (r *SubscriptionRegistry) Subscribe(ctx context.Context, state interface{}, root ast.Node, operationName string, variables value.Value, callback SubscriptionCallback) (SubscriptionKey, error) {
	op, err := selectOperation(root, operationName, true)
	if err != nil {
		return 0, err
	}
	coerced, err := coerceVariables(op, variables)
	if err != nil {
		return 0, err
	}
	fragments := collectFragments(root)
	selection := ast.Child(op, ast.SelectionSet)

	fieldNames := make(map[string]struct{})
	if selection != nil {
		for _, child := range selection.Children() {
			if child.Kind() != ast.Field {
				continue
			}
			if nameNode := ast.Child(child, ast.FieldName); nameNode != nil {
				fieldNames[nameNode.Content()] = struct{}{}
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.nextKey
	r.nextKey++

	reg := &registration{
		key:           key,
		state:         state,
		fieldNames:    fieldNames,
		queryAST:      root,
		operationName: operationName,
		callback:      callback,
		fragments:     fragments,
		variables:     coerced,
		selection:     selection,
	}
	r.subscriptions[key] = reg
	for name := range fieldNames {
		if r.listeners[name] == nil {
			r.listeners[name] = make(map[SubscriptionKey]struct{})
		}
		r.listeners[name][key] = struct{}{}
	}
	return key, nil
}

// Unsubscribe removes key's registration, a no-op if key is unknown
// (spec.md §4.7). It applies the compaction rule from §9's design notes:
// _next_key resets to 0 on a full drain, otherwise to max_existing_key+1.
func (r *SubscriptionRegistry) Unsubscribe(key SubscriptionKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.subscriptions[key]
	if !ok {
		return
	}
	for name := range reg.fieldNames {
		bucket := r.listeners[name]
		delete(bucket, key)
		if len(bucket) == 0 {
			delete(r.listeners, name)
		}
	}
	delete(r.subscriptions, key)

	if len(r.subscriptions) == 0 {
		r.nextKey = 0
		return
	}
	var max SubscriptionKey
	for k := range r.subscriptions {
		if k > max {
			max = k
		}
	}
	r.nextKey = max + 1
}

// Deliver re-resolves every live registration listening on fieldName, in
// ascending key order (spec.md §5: "deliveries for a given field_name are
// dispatched in the order subscriptions were registered"), and invokes
// each registration's callback once. subscriptionObject overrides the
// default operation-type root when non-nil (spec.md §4.7's default-object
// rule).
func (r *SubscriptionRegistry) Deliver(ctx context.Context, fieldName string, subscriptionObject *Object) {
	r.mu.Lock()
	bucket := r.listeners[fieldName]
	keys := make([]SubscriptionKey, 0, len(bucket))
	for k := range bucket {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	regs := make([]*registration, 0, len(keys))
	for _, k := range keys {
		regs = append(regs, r.subscriptions[k])
	}
	obj := subscriptionObject
	if obj == nil {
		obj = r.operationTypes[opKindSubscription]
	}
	r.mu.Unlock()

	for _, reg := range regs {
		r.deliverOne(ctx, reg, obj)
	}
}

func (r *SubscriptionRegistry) deliverOne(ctx context.Context, reg *registration, obj *Object) {
	result, err := obj.Resolve(ctx, reg.state, reg.selection, reg.fragments, reg.variables).Get()
	wrapped := wrapResponse(valueOrZero(result), err)

	r.fanout(ctx, wrapped)
	r.invokeCallback(reg, wrapped)
}

func valueOrZero(v interface{}) value.Value {
	if v == nil {
		return value.Value{}
	}
	return v.(value.Value)
}

func (r *SubscriptionRegistry) invokeCallback(reg *registration, wrapped value.Value) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Printf("graphql: recovered panic in subscription callback: %v", p)
		}
	}()
	reg.callback(future.Done(wrapped, nil))
}

// fanout mirrors a delivered response onto the configured pubsub topic,
// best-effort: a publish failure is logged and otherwise ignored, since
// the registry's correctness invariant must not depend on an external
// broker being reachable (SPEC_FULL.md §2).
func (r *SubscriptionRegistry) fanout(ctx context.Context, wrapped value.Value) {
	if r.topic == nil {
		return
	}
	body, err := marshalValue(wrapped)
	if err != nil {
		r.logger.Printf("graphql: subscription fanout encode failed: %v", err)
		return
	}
	if err := r.topic.Send(ctx, &pubsub.Message{Body: body}); err != nil {
		r.logger.Printf("graphql: subscription fanout publish failed: %v", err)
	}
}
