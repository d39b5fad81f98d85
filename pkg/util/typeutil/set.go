// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typeutil

// Set 为基于 map 的集合类型，可以像创建 map 一样使用 make(Set[T]) 创建实例。
// Set 不是并发安全的。
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](elements ...T) Set[T] {
	set := make(Set[T], len(elements))
	set.Insert(elements...)
	return set
}

// Insert 向集合中插入元素。
func (set Set[T]) Insert(elements ...T) {
	for _, elem := range elements {
		set[elem] = struct{}{}
	}
}

// Contain 当且仅当所有元素都在集合中时返回 true。
func (set Set[T]) Contain(elements ...T) bool {
	for _, elem := range elements {
		if _, ok := set[elem]; !ok {
			return false
		}
	}
	return true
}

// Remove 从集合中删除元素。
func (set Set[T]) Remove(elements ...T) {
	for _, elem := range elements {
		delete(set, elem)
	}
}

// Collect 返回集合中所有元素的切片，顺序不固定。
func (set Set[T]) Collect() []T {
	elements := make([]T, 0, len(set))
	for elem := range set {
		elements = append(elements, elem)
	}
	return elements
}

// Len 返回集合中元素的个数。
func (set Set[T]) Len() int {
	return len(set)
}
