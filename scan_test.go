package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literalKeys(lits []literal) []string {
	var keys []string
	for _, l := range lits {
		keys = append(keys, l.key)
	}
	return keys
}

func TestFindGroupKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string // nil means no match expected
	}{
		{"trans single quotes", ` trans('base.ok')`, []string{"base.ok"}},
		{"trans double quotes", ` trans("base.ok")`, []string{"base.ok"}},
		{"start of text", `trans('base.ok')`, []string{"base.ok"}},
		{"nested item", ` __('auth.errors.password')`, []string{"auth.errors.password"}},
		{"with parameters", ` Lang::get('auth.failed', ['n' => 1])`, []string{"auth.failed"}},
		{"trans_choice", ` trans_choice('cart.apples', 3)`, []string{"cart.apples"}},
		{"blade directive", ` @lang('menu.title')`, []string{"menu.title"}},
		{"blade choice", ` @choice('cart.items', $n)`, []string{"cart.items"}},
		{"facade trans", ` Lang::trans('menu.home')`, []string{"menu.home"}},
		{"vue $trans.get", `{{ $trans.get('nav.back') }}`, []string{"nav.back"}},
		{"function name case-insensitive", ` TRANS('Base.Ok')`, []string{"Base.Ok"}},
		{"group with dash", ` trans('admin-panel.title')`, []string{"admin-panel.title"}},
		{"two calls", "trans('a.b');\ntrans('c.d');", []string{"a.b", "c.d"}},
		{"method call", ` $translator->trans('base.ok')`, nil},
		{"identifier prefix", ` mytrans('base.ok')`, nil},
		{"pipe prefix", `{{ x|trans('base.ok') }}`, nil},
		{"no dot", ` trans('nodot')`, nil},
		{"space after dot", ` trans('base. ok')`, nil},
		{"concatenated", ` trans('menu.' . $item)`, nil},
		{"space before quote", ` trans( 'base.ok')`, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, literalKeys(findGroupKeys(tc.content)))
		})
	}
}

func TestFindFlatKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"sentence", ` __('Hello world')`, []string{"Hello world"}},
		{"double quoted apostrophe", ` __("It's here")`, []string{"It's here"}},
		{"escaped quote", ` __('It\'s fine')`, []string{"It's fine"}},
		{"escaped backslash", ` __('a\\b')`, []string{`a\b`}},
		{"single word", ` @lang('Welcome')`, []string{"Welcome"}},
		{"with parameters", ` __('Hello :name', ['name' => $n])`, []string{"Hello :name"}},
		{"after arrow", ` $this->__('Hi')`, []string{"Hi"}},
		{"namespaced sentence kept", ` __('package::Some sentence.')`, []string{"package::Some sentence."}},
		{"dotted left to group pattern", ` __('base.ok')`, nil},
		{"namespaced key skipped", ` __('package::group.item')`, nil},
		{"identifier prefix", ` my__('Hello')`, nil},
		{"concatenated", ` __('Hello ' . $name)`, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, literalKeys(findFlatKeys(tc.content)))
		})
	}
}

func TestDottedKeyWithSpaceIsBothGroupAndFlat(t *testing.T) {
	content := ` trans('base.hello world')`
	assert.Equal(t, []string{"base.hello world"}, literalKeys(findGroupKeys(content)))
	assert.Equal(t, []string{"base.hello world"}, literalKeys(findFlatKeys(content)))
}

func TestLineAt(t *testing.T) {
	content := "a\nb\ntrans('x.y')"
	lits := findGroupKeys(content)
	require.Len(t, lits, 1)
	assert.Equal(t, 3, lineAt(content, lits[0].offset))
	assert.Equal(t, 1, lineAt(content, 0))
}

func TestUnescapeQuoted(t *testing.T) {
	assert.Equal(t, "plain", unescapeQuoted("plain", '\''))
	assert.Equal(t, "it's", unescapeQuoted(`it\'s`, '\''))
	assert.Equal(t, `say "hi"`, unescapeQuoted(`say \"hi\"`, '"'))
	assert.Equal(t, `keep \n`, unescapeQuoted(`keep \n`, '"'))
}

// writeTree creates files under root from a relative path -> content map.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestScanSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/A.php":                   "",
		"resources/views/b.blade.php": "",
		"resources/js/c.vue":          "",
		"templates/d.twig":            "",
		"notes.txt":                   "",
		"vendor/pkg/e.php":            "",
		"storage/cache/f.php":         "",
	})
	patterns, err := compilePatterns([]string{"*.php", "*.twig", "*.vue"})
	require.NoError(t, err)

	files, err := scanSourceFiles(root, patterns, []string{"storage", "vendor"})
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{
		"app/A.php",
		"resources/js/c.vue",
		"resources/views/b.blade.php",
		"templates/d.twig",
	}, rel)
}

func TestExtractKeys(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/A.php":                   "<?php\necho trans('base.ok');\necho __('Hello world');\n",
		"resources/views/b.blade.php": "@lang('base.ok')\n{{ trans('base.error') }}\n{{ __('Hello world') }}\n{{ __('auth.nested.key') }}\n",
		"vendor/pkg/c.php":            "<?php trans('vendor.key');",
	})
	patterns, err := compilePatterns([]string{"*.php"})
	require.NoError(t, err)

	u, err := extractKeys(root, patterns, []string{"vendor"}, newExclusions(nil, false))
	require.NoError(t, err)

	assert.Equal(t, []groupID{grouped("base"), grouped("auth"), flatGroup}, u.used.groupIDs())
	assert.Equal(t, []string{"ok", "error"}, u.used.group(grouped("base")).keys)
	assert.Equal(t, []string{"nested.key"}, u.used.group(grouped("auth")).keys)
	assert.Equal(t, []string{"Hello world"}, u.used.group(flatGroup).keys)
	assert.False(t, u.used.hasGroup(grouped("vendor")))

	assert.Equal(t, []keyReference{
		{File: filepath.Join("app", "A.php"), Line: 2},
		{File: filepath.Join("resources", "views", "b.blade.php"), Line: 1},
	}, u.refs[keyRef{group: grouped("base"), item: "ok"}])
	assert.Len(t, u.refs[keyRef{group: flatGroup, item: "Hello world"}], 2)
}

func TestExtractKeysDeduplicates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.php": "<?php trans('base.ok'); trans(\"base.ok\");",
		"b.php": "<?php trans('base.ok');",
	})
	patterns, err := compilePatterns([]string{"*.php"})
	require.NoError(t, err)

	u, err := extractKeys(root, patterns, nil, newExclusions(nil, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, u.used.group(grouped("base")).keys)
	assert.False(t, u.used.hasGroup(flatGroup))
	assert.Len(t, u.refs[keyRef{group: grouped("base"), item: "ok"}], 3)
}

func TestExtractKeysExclusions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.php": "<?php trans('base.ok'); trans('menu.home'); __('Hello');",
	})
	patterns, err := compilePatterns([]string{"*.php"})
	require.NoError(t, err)

	u, err := extractKeys(root, patterns, nil, newExclusions([]string{"base"}, true))
	require.NoError(t, err)
	assert.Equal(t, []groupID{grouped("menu")}, u.used.groupIDs())
}

func TestExtractKeysUnreadableFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.php": "<?php trans('base.ok');"})
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.php"), filepath.Join(root, "link.php")))
	patterns, err := compilePatterns([]string{"*.php"})
	require.NoError(t, err)

	_, err = extractKeys(root, patterns, nil, newExclusions(nil, false))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScan)
}
