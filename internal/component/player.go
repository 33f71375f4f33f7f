package component

// Inventory counts collected-but-unused enchantments by kind.
type Inventory map[EnchantmentKind]int

// Add stores one enchantment of kind k.
func (inv Inventory) Add(k EnchantmentKind) {
	inv[k]++
}

// Take removes one enchantment of kind k, reporting whether one was available.
func (inv Inventory) Take(k EnchantmentKind) bool {
	if inv[k] <= 0 {
		return false
	}
	inv[k]--
	if inv[k] == 0 {
		delete(inv, k)
	}
	return true
}

// Count returns how many of kind k are held.
func (inv Inventory) Count(k EnchantmentKind) int {
	return inv[k]
}

// Clone copies the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
