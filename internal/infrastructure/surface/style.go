package surface

import "encoding/json"

// InsertStyleJS is a function expression that appends css as a
// <style data-chatdeck-unify> element to the current document.
const InsertStyleJS = `(css) => {
	const el = document.createElement('style');
	el.setAttribute('data-chatdeck-unify', '');
	el.textContent = css;
	(document.head || document.documentElement).appendChild(el);
}`

// InsertStyleScript returns a classic script calling InsertStyleJS with css,
// for engines that cannot pass arguments to an evaluation.
func InsertStyleScript(css string) string {
	arg, _ := json.Marshal(css)
	return "(" + InsertStyleJS + ")(" + string(arg) + ");"
}
