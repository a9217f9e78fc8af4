// Package view composes the read models shown by the dashboard tabs from cached collections.
package view

import (
	"slices"
)

// Topical is an item that belongs to a topic.
type Topical interface {
	TopicName() string
}

// Subset is an optional filtered collection.
// Present distinguishes an empty match from the absence of a filter.
type Subset[T any] struct {
	Items   []T
	Present bool
}

// Filtered marks items as a present subset, even when empty.
func Filtered[T any](items []T) Subset[T] {
	return Subset[T]{Items: items, Present: true}
}

// SelectView returns the filtered subset when one is present and the full collection otherwise.
// The two are never merged.
func SelectView[T any](full []T, filtered Subset[T]) []T {
	if filtered.Present {
		return filtered.Items
	}
	return full
}

// TopicGroup is the slice of a collection sharing one topic.
type TopicGroup[T any] struct {
	Topic string
	Items []T
}

// GroupByTopic partitions items by topic. Groups are ordered by topic name and items keep
// their original relative order within a group.
func GroupByTopic[T Topical](items []T) []TopicGroup[T] {
	index := make(map[string]int)
	var groups []TopicGroup[T]
	for _, item := range items {
		topic := item.TopicName()
		i, ok := index[topic]
		if !ok {
			i = len(groups)
			index[topic] = i
			groups = append(groups, TopicGroup[T]{Topic: topic})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	slices.SortStableFunc(groups, func(a, b TopicGroup[T]) int {
		switch {
		case a.Topic < b.Topic:
			return -1
		case a.Topic > b.Topic:
			return 1
		default:
			return 0
		}
	})
	return groups
}

// Topics returns the distinct topics of items in lexicographic order.
func Topics[T Topical](items []T) []string {
	groups := GroupByTopic(items)
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Topic)
	}
	return out
}
