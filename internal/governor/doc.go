// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package governor keeps local storage under its quota.
//
// A [Governor] periodically estimates usage through a [QuotaEstimator] and,
// when the warning or critical band is reached, runs the registered
// [CleanupStrategy] list highest priority first. Archival runs on its own
// timer whenever usage passes the archive threshold. The filesystem work of
// the default strategies is delegated to a [Housekeeper]; [FSHousekeeper]
// implements it on top of an afero filesystem.
package governor
