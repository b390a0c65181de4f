// Package view renders the HTML fragments Datastar patches into a page: the
// form markup with its rule declarations and the per-field error elements.
//
// Components are plain templ.Component values. Text that reaches the page,
// such as labels and messages, passes through a strict bluemonday policy.
package view
