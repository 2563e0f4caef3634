// Package mocks provides test doubles for ports interfaces.
//
// These mocks are designed to be simple, thread-safe, in-memory implementations
// suitable for unit testing. Each mock provides:
//
//   - Default behavior backed by an in-memory map
//   - Callback functions (xxxFn) for customizing behavior per test
//   - Helper methods for setting state directly
//   - Reset methods for test isolation
//
// # Usage Example
//
//	func TestResolver(t *testing.T) {
//		store := mocks.NewContentStore()
//		store.AddOption("mortgage_refinance_bank_option_1", "refinance_mortgage_1", domain.Translations{RU: "Банк"})
//
//		resolver := dropdown.NewResolver(store, nil)
//		// ... test resolver behavior
//	}
//
// # Available Mocks
//
//   - ContentStore: implements ports.ContentStore
package mocks
