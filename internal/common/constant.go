// Package common contains shared constants and sentinel errors used across
// gymkeeper components.
package common

// AppName is shown in the page chrome.
const AppName = "UNITY FITNESS"

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 6
