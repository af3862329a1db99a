// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package interval adapts how often the host attempts to sync to the
// observed network quality.
//
// The [Controller] samples a [NetworkReader] on a timer, keeps the last
// samples in a bounded history and derives the next sync interval with a
// priority-ordered list of threshold and trend rules. The result is rounded
// to whole seconds and clamped to the configured range. Subscribers are
// notified only when the interval actually changes.
package interval
