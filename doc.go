/* Package atomset: interned atoms for a source front end

A front end that lexes and parses one source unit meets the same handful of
strings over and over: identifiers, keywords, property names, string literals.
Rather than carry each occurrence around as its own string, the front end
interns it into a Set and carries a small Index instead. Equal strings always
get the same Index; the first string ever inserted gets @0, the next new one
@1, and so on, with no gaps.

A Set built by New starts out holding the common atoms: the reserved words of
the target language, plus the "use strict" pragma and the "__proto__" property
name. They occupy @0 through @NumCommon-1 in a fixed order, so an emitter may
refer to e.g. Return or UseStrict without ever having seen the text. That order
is part of the contract with whatever consumes the exported table; do not
reorder common.go.

Once the unit is done, Export hands back the atoms as a plain []string, where
position i holds the text of Index i. The Set is finished after that: any
further Insert is a programming error, and panics.

A Set is owned by one producer at a time and does no locking of its own. To
hand a Set over, Detach it (leaving an empty one behind); to combine the work
of several units, Adopt each unit's exported atoms into one Set and use the
returned remapping.

*/
package atomset
