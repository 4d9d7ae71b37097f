// Command starwars is a runnable demonstration of the gqlcore API: building
// Objects with ResolverMaps, wiring a Dispatcher over them, and resolving a
// hand-built request document (standing in for what a parser would hand
// back).
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shyptr/gqlcore"
	"github.com/shyptr/gqlcore/future"
	"github.com/shyptr/gqlcore/value"
)

type character struct {
	name    string
	friends []string
}

var humans = map[string]*character{
	"1000": {name: "Luke Skywalker", friends: []string{"1002", "1003"}},
	"1002": {name: "Han Solo", friends: []string{"1000"}},
	"1003": {name: "Leia Organa", friends: []string{"1000", "1002"}},
}

func friendsResolver(ctx context.Context, params gqlcore.ResolverParams) *future.Future {
	self := params.State.(*character)
	elems := make([]gqlcore.ResultValue, len(self.friends))
	for i, id := range self.friends {
		elems[i] = gqlcore.ObjectResult(characterObject(humans[id]))
	}
	return gqlcore.ConvertResult(ctx, self, gqlcore.ListResult(elems), gqlcore.Chain{gqlcore.List, gqlcore.None}, params.Selection, params.Fragments, params.Variables, "friends")
}

func nameResolver(ctx context.Context, params gqlcore.ResolverParams) *future.Future {
	self := params.State.(*character)
	return future.Done(value.String(self.name), nil)
}

// characterObject builds an Object bound to one character. The engine
// treats every field as a lookup against the current State, so a fresh
// Object per character keeps Resolve's State argument pinned correctly.
func characterObject(c *character) *gqlcore.Object {
	bind := func(r gqlcore.Resolver) gqlcore.Resolver {
		return func(ctx context.Context, params gqlcore.ResolverParams) *future.Future {
			params.State = c
			return r(ctx, params)
		}
	}
	return gqlcore.NewObject(gqlcore.NewTypeNames("Character"), gqlcore.ResolverMap{
		"name":    bind(nameResolver),
		"friends": bind(friendsResolver),
	})
}

func heroResolver(ctx context.Context, params gqlcore.ResolverParams) *future.Future {
	hero := humans["1000"]
	return gqlcore.ConvertResult(ctx, hero, gqlcore.ObjectResult(characterObject(hero)), gqlcore.Chain{gqlcore.None}, params.Selection, params.Fragments, params.Variables, "hero")
}

func main() {
	queryObject := gqlcore.NewObject(gqlcore.NewTypeNames("Query"), gqlcore.ResolverMap{
		"hero": heroResolver,
	})
	dispatcher := gqlcore.NewDispatcher(map[string]*gqlcore.Object{
		"query": queryObject,
	})

	// { hero { name friends { name } } }
	request := document(query("HeroFriends", selectionSet(
		field("hero", selectionSet(
			field("name", nil),
			field("friends", selectionSet(
				field("name", nil),
			)),
		)),
	)))

	result, err := dispatcher.Resolve(context.Background(), nil, request, "", value.NewMap()).Get()
	if err != nil {
		log.Fatal(err)
	}

	out, err := gqlcore.Marshal(result.(value.Value))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
