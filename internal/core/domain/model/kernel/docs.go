// Package kernel contains shared value objects used across the order domain.
//
// It currently holds the UUID value object that identifies orders and line
// items. Kernel types are immutable, validated at construction, and safe to
// pass by value.
package kernel
