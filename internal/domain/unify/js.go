package unify

import (
	"encoding/json"
	"strings"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// observeTemplate runs the body once and again after every DOM mutation
// under the document root. __BODY__ must define a function named run.
const observeTemplate = `(function(){
__BODY__
run();
var root=document.documentElement;
if(root&&typeof MutationObserver!=='undefined'){new MutationObserver(function(){run();}).observe(root,{childList:true,subtree:true});}
})();`

const hideBody = `var selectors=__DATA__;
var run=function(){selectors.forEach(function(sel){try{document.querySelectorAll(sel).forEach(function(el){if(el.style.getPropertyValue('display')!=='none'){el.style.setProperty('display','none','important');}});}catch(e){}});};`

const classBody = `var tweaks=__DATA__;
var run=function(){tweaks.forEach(function(t){try{document.querySelectorAll(t.selector).forEach(function(el){(t.add||[]).forEach(function(c){if(!el.classList.contains(c)){el.classList.add(c);}});(t.remove||[]).forEach(function(c){if(el.classList.contains(c)){el.classList.remove(c);}});});}catch(e){}});};`

const styleBody = `var tweaks=__DATA__;
var run=function(){tweaks.forEach(function(t){try{document.querySelectorAll(t.selector).forEach(function(el){t.styles.forEach(function(d){if(el.style.getPropertyValue(d[0])!==d[1]||el.style.getPropertyPriority(d[0])!==t.priority){el.style.setProperty(d[0],d[1],t.priority);}});});}catch(e){}});};`

const bundleHead = "(function(){try{\n"
const bundleTail = "\n}catch(e){console.warn('[chatdeck] unify script failed',e);}})();"

type styleTweakJS struct {
	Selector string      `json:"selector"`
	Styles   [][2]string `json:"styles"`
	Priority string      `json:"priority"`
}

// BuildJS renders the unify script bundle for cfg. It returns "" when there
// is nothing to run.
func BuildJS(cfg entity.MergedConfig) string {
	parts := []string{}

	if len(cfg.HideSelectors) > 0 {
		parts = append(parts, observed(hideBody, cfg.HideSelectors))
	}
	if classes := validClassTweaks(cfg.ClassTweaks); len(classes) > 0 {
		parts = append(parts, observed(classBody, classes))
	}
	if styles := styleTweaksJS(cfg.StyleTweaks); len(styles) > 0 {
		parts = append(parts, observed(styleBody, styles))
	}
	if js := strings.TrimSpace(cfg.JS); js != "" {
		parts = append(parts, js)
	}
	if cfg.UserEnabled {
		if js := strings.TrimSpace(cfg.UserJS); js != "" {
			parts = append(parts, js)
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return bundleHead + strings.Join(parts, "\n") + bundleTail
}

// ThemeScript sets data-theme on the document root.
func ThemeScript(dark bool) string {
	theme := "light"
	if dark {
		theme = "dark"
	}
	return `(function(){var r=document.documentElement;if(r){r.dataset.theme='` + theme + `';}})();`
}

func observed(body string, data any) string {
	encoded, err := json.Marshal(data)
	if err != nil {
		// Only plain strings and slices reach here.
		encoded = []byte("[]")
	}
	body = strings.Replace(body, "__DATA__", string(encoded), 1)
	return strings.Replace(observeTemplate, "__BODY__", body, 1)
}

func validClassTweaks(tweaks []entity.ClassTweak) []entity.ClassTweak {
	out := make([]entity.ClassTweak, 0, len(tweaks))
	for _, t := range tweaks {
		if strings.TrimSpace(t.Selector) == "" || len(t.Add)+len(t.Remove) == 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}

func styleTweaksJS(tweaks []entity.StyleTweak) []styleTweakJS {
	out := make([]styleTweakJS, 0, len(tweaks))
	for _, t := range tweaks {
		if strings.TrimSpace(t.Selector) == "" || len(t.Styles) == 0 {
			continue
		}
		decls := t.Styles.Sorted()
		pairs := make([][2]string, len(decls))
		for i, d := range decls {
			pairs[i] = [2]string{d.Property, d.Value}
		}
		out = append(out, styleTweakJS{Selector: t.Selector, Styles: pairs, Priority: t.Priority()})
	}
	return out
}
