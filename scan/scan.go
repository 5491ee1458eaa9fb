package scan

import "errors"

// Instruction recognizes mul(X,Y) at c, where X and Y are runs of one or
// more digits, and returns X*Y and the cursor just past the ")". On
// failure c is returned unchanged.
func Instruction(c Cursor) (int, Cursor, error) {
	next, err := c.tag("mul(")
	if err != nil {
		return 0, c, err
	}
	x, next, err := next.digits()
	if err != nil {
		return 0, c, err
	}
	if next, err = next.char(',', NoComma); err != nil {
		return 0, c, err
	}
	y, next, err := next.digits()
	if err != nil {
		return 0, c, err
	}
	if next, err = next.char(')', MissingCloseParen); err != nil {
		return 0, c, err
	}
	return x * y, next, nil
}

func toggle(c Cursor, lit string) (Cursor, error) {
	next, err := c.tag(lit)
	if err != nil {
		return c, err
	}
	if next, err = next.char(')', MissingCloseParen); err != nil {
		return c, err
	}
	return next, nil
}

// Do recognizes do().
func Do(c Cursor) (Cursor, error) { return toggle(c, "do(") }

// Dont recognizes don't().
func Dont(c Cursor) (Cursor, error) { return toggle(c, "don't(") }

// Sum returns the sum of the products of every mul instruction in text.
func Sum(text string) int {
	sum := 0
	c := NewCursor(text)
	for !c.AtEnd() {
		v, next, err := Instruction(c)
		switch {
		case err == nil:
			sum += v
			c = next
		case errors.Is(err, ErrEndOfText):
			return sum
		default:
			c = c.Advance(1)
		}
	}
	return sum
}

// SumEnabled is like Sum, but don't() disables and do() re-enables the
// products that follow. Scanning starts enabled. A disabled mul is still
// consumed; it just adds nothing.
func SumEnabled(text string) int {
	sum := 0
	enabled := true
	c := NewCursor(text)
	for !c.AtEnd() {
		v, next, err := Instruction(c)
		if err == nil {
			if enabled {
				sum += v
			}
			c = next
			continue
		}
		if errors.Is(err, ErrEndOfText) {
			break
		}

		if next, err = Dont(c); err == nil {
			enabled = false
			c = next
			continue
		} else if errors.Is(err, ErrEndOfText) {
			break
		}

		if next, err = Do(c); err == nil {
			enabled = true
			c = next
			continue
		} else if errors.Is(err, ErrEndOfText) {
			break
		}

		c = c.Advance(1)
	}
	return sum
}
