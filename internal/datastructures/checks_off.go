//go:build !dllist_checks

package datastructures

const defaultMembershipChecks = false
